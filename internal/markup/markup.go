// Package markup turns raw response bytes into a queryable document tree.
// Parsing is tolerant: broken HTML never fails, only input that cannot be
// decoded as text does.
package markup

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var ErrParse = errors.New("markup: input is not decodable text")

// Load parses raw bytes into a document. The only failure mode is
// undecodable input; malformed markup still yields a usable tree.
func Load(raw []byte) (*goquery.Document, error) {
	if !utf8.Valid(raw) || !looksLikeText(raw) {
		return nil, fmt.Errorf("%w (%d bytes)", ErrParse, len(raw))
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return doc, nil
}

// looksLikeText rejects inputs that are clearly binary. NUL bytes never
// appear in charset-decoded HTML.
func looksLikeText(raw []byte) bool {
	return !bytes.ContainsRune(raw, 0)
}

// Clean trims and entity-decodes a string pulled out of markup or script
// text. Fields already read through the parser are decoded twice at most,
// which is harmless for entity unescaping.
func Clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(s))
}

// FirstText returns the trimmed text of the first selector that matches
// something non-empty, in candidate order.
func FirstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if t := Clean(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}

	return ""
}

// Attr returns the first non-empty attribute among names on sel.
func Attr(sel *goquery.Selection, names ...string) string {
	for _, n := range names {
		if v, ok := sel.Attr(n); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}

	return ""
}
