/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package libhttp

import (
	"bytes"
	"golang.org/x/net/html/charset"
	"io"
)

//BodyUTF8 returns a reader that decodes body to UTF-8 according to contentType.
//An empty contentType makes the encoding be sniffed from the body (BOM, meta tags).
func BodyUTF8(contentType string, body []byte) (io.Reader, error) {
	return charset.NewReader(bytes.NewReader(body), contentType)
}
