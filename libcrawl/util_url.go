/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package libcrawl

import (
	"fmt"
	"net/url"
)

//urlForSeed checks that u can serve as the first page and as the base for next links.
func urlForSeed(u *url.URL) (string, error) {
	if u == nil {
		return "", fmt.Errorf("No seed url given")
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("%q is not an absolute URL", u.String())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%q is an unsupported url scheme", u.String())
	}
	return u.String(), nil
}
