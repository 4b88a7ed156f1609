/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package redirect

import (
	"fmt"
	"github.com/go-resty/resty/v2"
	"github.com/jwdev42/quotecrawl/global"
	"net/http"
)

const default_redirects = 10

var log = global.GetLogger()

//Policy returns the redirect policy for a fetcher.
func Policy(allow bool) resty.RedirectPolicy {
	if allow {
		return resty.RedirectPolicyFunc(Log)
	}
	return resty.RedirectPolicyFunc(Deny)
}

func Deny(req *http.Request, via []*http.Request) error {
	if len(via) > 0 {
		lastReq := via[len(via)-1]
		return fmt.Errorf("Attempted Redirection: %q → %q", lastReq.URL.String(), req.URL.String())
	}
	return nil
}

func Log(req *http.Request, via []*http.Request) error {
	if len(via) > default_redirects {
		return fmt.Errorf("Too many redirects")
	}
	if len(via) > 0 {
		lastReq := via[len(via)-1]
		log.Notice(fmt.Sprintf("Redirection: %q → %q", lastReq.URL.String(), req.URL.String()))
	}
	return nil
}
