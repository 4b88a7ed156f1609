package libcrawl

import (
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

//site serves a fixed set of listing pages and records every request path.
type site struct {
	pages map[string]string
	m     sync.Mutex
	hits  []string
}

func newSite(t *testing.T, pages map[string]string) (*site, *httptest.Server) {
	s := &site{pages: pages}
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	return s, srv
}

func (s *site) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.m.Lock()
	s.hits = append(s.hits, r.URL.Path)
	s.m.Unlock()
	page, ok := s.pages[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}

func (s *site) requests() []string {
	s.m.Lock()
	defer s.m.Unlock()
	return append([]string(nil), s.hits...)
}

func quoteMarkup(rec Record) string {
	b := new(strings.Builder)
	b.WriteString(`<div class="quote" itemscope>`)
	fmt.Fprintf(b, "\n  <span class=\"text\" itemprop=\"text\">%s</span>", html.EscapeString(rec.Text))
	fmt.Fprintf(b, "\n  <span>by <small class=\"author\" itemprop=\"author\">%s</small> <a href=\"/author/x\">(about)</a></span>", html.EscapeString(rec.Author))
	b.WriteString("\n  <div class=\"tags\">\n    Tags:")
	for _, tag := range rec.Tags {
		fmt.Fprintf(b, "\n    <a class=\"tag\" href=\"/tag/%s/page/1/\">%s</a>", tag, html.EscapeString(tag))
	}
	b.WriteString("\n  </div>\n</div>\n")
	return b.String()
}

//listingPage builds a page in the layout of quotes.toscrape.com. An empty next omits the pager control.
func listingPage(next string, records ...Record) string {
	b := new(strings.Builder)
	b.WriteString("<!DOCTYPE html>\n<html><head><title>Quotes</title></head><body>\n<div class=\"container\">\n")
	for _, rec := range records {
		b.WriteString(quoteMarkup(rec))
	}
	b.WriteString("<nav><ul class=\"pager\">\n")
	if next != "" {
		fmt.Fprintf(b, "<li class=\"next\"><a href=\"%s\">Next <span aria-hidden=\"true\">&rarr;</span></a></li>\n", next)
	}
	b.WriteString("</ul></nav>\n</div></body></html>")
	return b.String()
}
