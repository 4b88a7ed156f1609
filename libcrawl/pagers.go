/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package libcrawl

import (
	"github.com/jwdev42/quotecrawl/libhtml"
)

//NextLinkPager follows the "next page" control of each page.
//The href is appended to Base verbatim, it is not resolved as a relative reference.
type NextLinkPager struct {
	Base     string
	Selector string
}

func NewNextLinkPager(base string, sel Selectors) *NextLinkPager {
	return &NextLinkPager{Base: base, Selector: sel.Next}
}

//Resolve returns the address of the page following page. A missing control
//or a control without a usable href means there is no next page.
func (r *NextLinkPager) Resolve(page libhtml.Queryable) (string, bool) {
	next, ok := page.SelectFirst(r.Selector)
	if !ok {
		return "", false
	}
	href, ok := next.AttrVal("href")
	if !ok || href == "" {
		return "", false
	}
	return r.Base + href, true
}
