/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package libcrawl

import (
	"fmt"
	"strings"
	"unicode"
)

//Record is one item scraped from a listing page.
type Record struct {
	Text   string
	Author string
	Tags   TagList
}

//TagList holds a record's tags in the order they appear on the page.
type TagList []string

//String renders the tags as a bracketed list literal, e.g. ['love', 'life'].
func (t TagList) String() string {
	b := new(strings.Builder)
	b.WriteByte('[')
	for i, tag := range t {
		if i > 0 {
			b.WriteString(", ")
		}
		writeQuoted(b, tag)
	}
	b.WriteByte(']')
	return b.String()
}

//writeQuoted uses single quotes unless the tag contains single but no double quotes
func writeQuoted(b *strings.Builder, s string) {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}
	b.WriteRune(quote)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case quote:
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			if unicode.IsPrint(r) {
				b.WriteRune(r)
			} else {
				writeEscaped(b, r)
			}
		}
	}
	b.WriteRune(quote)
}

//writeEscaped writes r as \xNN, \uNNNN or \UNNNNNNNN depending on its size
func writeEscaped(b *strings.Builder, r rune) {
	switch {
	case r < 0x100:
		fmt.Fprintf(b, `\x%02x`, r)
	case r < 0x10000:
		fmt.Fprintf(b, `\u%04x`, r)
	default:
		fmt.Fprintf(b, `\U%08x`, r)
	}
}
