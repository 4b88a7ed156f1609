/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package libcrawl

import (
	"github.com/jwdev42/quotecrawl/libhtml"
)

//Selectors describes where the fields of a record live in a listing page.
type Selectors struct {
	Container string
	Text      string
	Author    string
	Tag       string
	Next      string
}

var DefaultSelectors = Selectors{
	Container: ".quote",
	Text:      ".text",
	Author:    ".author",
	Tag:       ".tag",
	Next:      ".next > a",
}

type Extractor struct {
	Selectors Selectors
}

func NewExtractor(sel Selectors) *Extractor {
	return &Extractor{Selectors: sel}
}

//Extract returns one record per container, in document order.
func (r *Extractor) Extract(page libhtml.Queryable) ([]Record, error) {
	containers := page.SelectAll(r.Selectors.Container)
	records := make([]Record, 0, len(containers))
	for i, c := range containers {
		rec, err := r.record(i, c)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *Extractor) record(index int, container *libhtml.Element) (Record, error) {
	text, ok := container.SelectFirst(r.Selectors.Text)
	if !ok {
		return Record{}, &MissingFieldError{Field: "text", Index: index}
	}
	author, ok := container.SelectFirst(r.Selectors.Author)
	if !ok {
		return Record{}, &MissingFieldError{Field: "author", Index: index}
	}
	elems := container.SelectAll(r.Selectors.Tag)
	tags := make(TagList, 0, len(elems))
	for _, e := range elems {
		tags = append(tags, e.Text())
	}
	return Record{
		Text:   text.Text(),
		Author: author.Text(),
		Tags:   tags,
	}, nil
}
