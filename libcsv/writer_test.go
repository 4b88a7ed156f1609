package libcsv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"github.com/jwdev42/quotecrawl/libcrawl"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

//sliceSource hands out records and fails with err once they are used up.
type sliceSource struct {
	records []libcrawl.Record
	err     error
}

func (s *sliceSource) Next() (*libcrawl.Record, error) {
	if len(s.records) == 0 {
		return nil, s.err
	}
	rec := s.records[0]
	s.records = s.records[1:]
	return &rec, nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.csv")
	src := &sliceSource{records: []libcrawl.Record{
		{Text: "a, b", Author: "X", Tags: libcrawl.TagList{"t1", "t2"}},
	}}
	n, err := Write(src, path)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "text,author,tags\r\n\"a, b\",X,\"['t1', 't2']\"\r\n", string(raw))

	require.Equal(t, [][]string{
		{"text", "author", "tags"},
		{"a, b", "X", "['t1', 't2']"},
	}, readCSV(t, path))
}

func TestWriteQuoting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.csv")
	records := []libcrawl.Record{
		{Text: `He said "no"`, Author: "Y", Tags: nil},
		{Text: "two\nlines", Author: "Zoë", Tags: libcrawl.TagList{"don't"}},
	}
	_, err := Write(&sliceSource{records: append([]libcrawl.Record(nil), records...)}, path)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"text", "author", "tags"},
		{`He said "no"`, "Y", "[]"},
		{"two\nlines", "Zoë", `["don't"]`},
	}, readCSV(t, path))
}

func TestWriteTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale,data\n", 100)), 0644))
	n, err := Write(&sliceSource{}, path)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, [][]string{{"text", "author", "tags"}}, readCSV(t, path))
}

func TestWriteUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "quotes.csv")
	_, err := Write(&sliceSource{}, path)
	var werr *WriteError
	require.True(t, errors.As(err, &werr), "unexpected error: %v", err)
	require.Equal(t, path, werr.Path)
}

func TestWriteToFailingWriter(t *testing.T) {
	src := &sliceSource{records: []libcrawl.Record{{Text: "a", Author: "b"}}}
	_, err := WriteTo(src, failingWriter{})
	var werr *WriteError
	require.True(t, errors.As(err, &werr), "unexpected error: %v", err)
}

func TestWriteSourceError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.csv")
	srcErr := &libcrawl.FetchError{URL: "https://quotes.toscrape.com/page/2/", Status: 500}
	src := &sliceSource{
		records: []libcrawl.Record{{Text: "kept", Author: "A", Tags: libcrawl.TagList{"t"}}},
		err:     srcErr,
	}
	n, err := Write(src, path)
	require.Equal(t, 1, n)
	require.ErrorIs(t, err, srcErr)
	var werr *WriteError
	require.False(t, errors.As(err, &werr))

	//rows written before the failure remain
	require.Equal(t, [][]string{
		{"text", "author", "tags"},
		{"kept", "A", "['t']"},
	}, readCSV(t, path))
}

func TestWriteTo(t *testing.T) {
	buf := new(bytes.Buffer)
	n, err := WriteTo(&sliceSource{records: []libcrawl.Record{{Text: "x", Author: "y", Tags: libcrawl.TagList{"z"}}}}, buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "text,author,tags\r\nx,y,['z']\r\n", buf.String())
}
