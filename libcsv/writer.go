/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package libcsv

import (
	"encoding/csv"
	"fmt"
	"github.com/jwdev42/quotecrawl/libcrawl"
	"io"
	"os"
)

var Header = []string{"text", "author", "tags"}

//RecordSource yields records until it returns nil, nil.
type RecordSource interface {
	Next() (*libcrawl.Record, error)
}

//WriteError wraps an I/O failure on the output.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("Writing records failed: %v", e.Err)
	}
	return fmt.Sprintf("Writing records to %q failed: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

//Write creates or truncates the file at path and writes all records of src to it.
//Rows that were written before an error stay in the file.
func Write(src RecordSource, path string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, &WriteError{Path: path, Err: err}
	}
	n, err := WriteTo(src, f)
	if err != nil {
		f.Close()
		if werr, ok := err.(*WriteError); ok {
			werr.Path = path
		}
		return n, err
	}
	if err := f.Close(); err != nil {
		return n, &WriteError{Path: path, Err: err}
	}
	return n, nil
}

//WriteTo writes the header row followed by one row per record. Errors
//returned by src are passed through unchanged.
func WriteTo(src RecordSource, w io.Writer) (int, error) {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := writeRow(cw, Header); err != nil {
		return 0, err
	}
	count := 0
	for {
		rec, err := src.Next()
		if err != nil {
			return count, err
		}
		if rec == nil {
			return count, nil
		}
		if err := writeRow(cw, []string{rec.Text, rec.Author, rec.Tags.String()}); err != nil {
			return count, err
		}
		count++
	}
}

func writeRow(cw *csv.Writer, row []string) error {
	if err := cw.Write(row); err != nil {
		return &WriteError{Err: err}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
