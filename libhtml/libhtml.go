/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package libhtml

import (
	"github.com/PuerkitoBio/goquery"
	"io"
	"strings"
)

//Queryable is implemented by everything that can be searched with css selectors.
type Queryable interface {
	SelectFirst(pattern string) (*Element, bool)
	SelectAll(pattern string) []*Element
}

//Document is a parsed html page.
type Document struct {
	doc *goquery.Document
}

//Element is a single html element inside a Document.
type Element struct {
	sel *goquery.Selection
}

func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

func (d *Document) SelectFirst(pattern string) (*Element, bool) {
	return selectFirst(d.doc.Selection, pattern)
}

func (d *Document) SelectAll(pattern string) []*Element {
	return selectAll(d.doc.Selection, pattern)
}

func (e *Element) SelectFirst(pattern string) (*Element, bool) {
	return selectFirst(e.sel, pattern)
}

func (e *Element) SelectAll(pattern string) []*Element {
	return selectAll(e.sel, pattern)
}

//Text returns the concatenated text of the element and its descendants
//with leading and trailing whitespace removed.
func (e *Element) Text() string {
	return strings.TrimSpace(e.sel.Text())
}

func (e *Element) AttrVal(attribute string) (string, bool) {
	return e.sel.Attr(attribute)
}

//invalid selectors match nothing
func selectFirst(sel *goquery.Selection, pattern string) (*Element, bool) {
	found := sel.Find(pattern).First()
	if found.Length() == 0 {
		return nil, false
	}
	return &Element{sel: found}, true
}

func selectAll(sel *goquery.Selection, pattern string) []*Element {
	found := sel.Find(pattern)
	elems := make([]*Element, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		elems = append(elems, &Element{sel: s})
	})
	return elems
}
