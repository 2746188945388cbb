// Package source defines the site-adapter contract and the thin
// orchestration layer on top of it. Adapters are pure: they map an
// already-fetched document plus a Context to canonical entities and
// never touch the network themselves.
package source

import (
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvind/mangasrc/internal/model"
)

// Context carries the per-call configuration an extractor needs. It is
// passed by value; adapters must not retain it.
type Context struct {
	Domain        string // scheme+host, no trailing slash
	Language      string
	DefaultRating model.ContentRating
	Now           func() time.Time // nil means time.Now
}

func (c Context) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}

	return time.Now()
}

// Section describes one curated landing-page list and how it should be
// presented. The kind only shapes the output items, never the extraction.
type Section struct {
	ID    string
	Title string
	Kind  model.DiscoverKind
}

// Adapter is one site family. Parse methods are deterministic given
// identical document input; URL builders round-trip with CleanID.
type Adapter interface {
	Key() string
	Name() string

	ParseMangaDetails(doc *goquery.Document, id string, ctx Context) (model.Manga, error)
	ParseChapterList(doc *goquery.Document, manga model.Manga, ctx Context) ([]model.Chapter, error)
	ParseChapterPages(doc *goquery.Document, chapter model.Chapter, ctx Context) ([]string, error)
	ParseSearchResults(doc *goquery.Document, page int, filtered bool, ctx Context) (model.SearchPage, error)
	ParseDiscoverSection(doc *goquery.Document, section Section, ctx Context) ([]model.DiscoverItem, error)
	ParseFilterOptions(doc *goquery.Document) (model.FilterOptions, error)
	ParseSortOptions(doc *goquery.Document) ([]model.Option, error)

	CleanID(raw string) string
	DetailURL(id string, ctx Context) string
	ChapterURL(chapterID string, ctx Context) string
	SearchURL(query string, page int, ctx Context) string
	HomeURL(ctx Context) string
	FilterPageURL(ctx Context) string
	Sections() []Section
}
