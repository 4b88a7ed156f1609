/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package libcrawl

import (
	"fmt"
	"github.com/jwdev42/quotecrawl/libhtml"
)

type FetcherInterface interface {
	Fetch(string) (*libhtml.Document, error)
}

type ExtractorInterface interface {
	Extract(libhtml.Queryable) ([]Record, error)
}

type PagerInterface interface {
	Resolve(libhtml.Queryable) (string, bool)
}

//PageStat describes a page the stream has fetched.
type PageStat struct {
	URL     string
	Records int
}

//Stream produces the records of a paginated listing on demand. A page is
//only fetched once all records of the previous page have been consumed.
//There is no cycle detection, a next link that points back to an already
//visited page makes the stream endless.
type Stream struct {
	fetcher   FetcherInterface
	extractor ExtractorInterface
	pager     PagerInterface
	current   string
	pending   []Record
	done      bool
	pages     []PageStat
}

func NewStream(seed string, fetcher FetcherInterface, extractor ExtractorInterface, pager PagerInterface) *Stream {
	return &Stream{
		fetcher:   fetcher,
		extractor: extractor,
		pager:     pager,
		current:   seed,
	}
}

//Next returns the next record, or nil if the listing is exhausted.
//After the first error the stream is finished and returns nil, nil.
func (s *Stream) Next() (*Record, error) {
	for len(s.pending) == 0 {
		if s.done {
			return nil, nil
		}
		if err := s.step(); err != nil {
			s.done = true
			s.pending = nil
			return nil, err
		}
	}
	rec := s.pending[0]
	s.pending = s.pending[1:]
	return &rec, nil
}

//Pages returns the pages fetched so far.
func (s *Stream) Pages() []PageStat {
	return s.pages
}

func (s *Stream) step() error {
	log.Notice(fmt.Sprintf("Fetching page %q", s.current))
	doc, err := s.fetcher.Fetch(s.current)
	if err != nil {
		return err
	}
	records, err := s.extractor.Extract(doc)
	if err != nil {
		return fmt.Errorf("Page %q: %w", s.current, err)
	}
	s.pages = append(s.pages, PageStat{URL: s.current, Records: len(records)})
	next, ok := s.pager.Resolve(doc)
	if ok {
		s.current = next
	} else {
		s.done = true
	}
	s.pending = records
	return nil
}
