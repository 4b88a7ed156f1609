/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package libcrawl

import (
	"fmt"
	"github.com/go-resty/resty/v2"
	"github.com/jwdev42/quotecrawl/libhtml"
	"github.com/jwdev42/quotecrawl/libhttp"
	"net/http"
)

type Fetcher struct {
	client *resty.Client
}

func NewFetcher(cookies []*http.Cookie, policy resty.RedirectPolicy) *Fetcher {
	client := resty.New().SetRedirectPolicy(policy)
	if len(cookies) > 0 {
		client.SetCookies(cookies)
	}
	return &Fetcher{client: client}
}

//Fetch downloads and parses the page at addr. Transport failures and
//HTTP status codes >= 400 are reported as *FetchError.
func (r *Fetcher) Fetch(addr string) (*libhtml.Document, error) {
	res, err := r.client.R().Get(addr)
	if err != nil {
		return nil, &FetchError{URL: addr, Err: err}
	}
	if res.IsError() {
		return nil, &FetchError{URL: addr, Status: res.StatusCode()}
	}
	contentType := res.Header().Get("Content-Type")
	if contentType == "" {
		log.Notice(fmt.Sprintf("No Content-Type in response from %q, guessing the encoding", addr))
	}
	body, err := libhttp.BodyUTF8(contentType, res.Body())
	if err != nil {
		return nil, &FetchError{URL: addr, Status: res.StatusCode(), Err: err}
	}
	doc, err := libhtml.Parse(body)
	if err != nil {
		return nil, &FetchError{URL: addr, Status: res.StatusCode(), Err: err}
	}
	return doc, nil
}
