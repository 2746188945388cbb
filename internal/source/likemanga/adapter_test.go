package likemanga

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvind/mangasrc/internal/markup"
	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/source"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := markup.Load([]byte(html))
	require.NoError(t, err)

	return doc
}

var testCtx = source.Context{
	Domain:        "https://lm.example",
	Language:      "en",
	DefaultRating: model.RatingEveryone,
}

func TestCleanIDPathShapes(t *testing.T) {
	a := Adapter{}

	cases := map[string]string{
		"https://lm.example/reader/manga/one-piece?page=2": "one-piece",
		"https://lm.example/manga/one-piece/":              "one-piece",
		"/reader/manga/one-piece#top":                      "one-piece",
		"/manga/one-piece":                                 "one-piece",
		"one-piece":                                        "one-piece",
	}

	for raw, want := range cases {
		assert.Equal(t, want, a.CleanID(raw), "raw=%q", raw)
	}
}

func TestCleanIDIdempotent(t *testing.T) {
	a := Adapter{}

	once := a.CleanID("https://lm.example/reader/manga/one-piece?page=2")
	assert.Equal(t, once, a.CleanID(once))
}

func TestDetailURLRoundTrip(t *testing.T) {
	a := Adapter{}

	url := a.DetailURL("one-piece", testCtx)
	assert.Equal(t, "https://lm.example/manga/one-piece", url)
	assert.Equal(t, "one-piece", a.CleanID(url))
}

func TestSearchURL(t *testing.T) {
	a := Adapter{}

	assert.Equal(t, "https://lm.example/search?q=one+piece&page=2", a.SearchURL("one piece", 2, testCtx))
	assert.Equal(t, "https://lm.example/manga-list?page=1", a.SearchURL("", 1, testCtx))
}

func TestStaticURLs(t *testing.T) {
	a := Adapter{}

	assert.Equal(t, "https://lm.example/", a.HomeURL(testCtx))
	assert.Equal(t, "https://lm.example/search-advanced", a.FilterPageURL(testCtx))
	assert.Equal(t, "https://lm.example/reader/manga/one-piece-1", a.ChapterURL("/reader/manga/one-piece-1", testCtx))
}

func TestSectionsAreCopies(t *testing.T) {
	a := Adapter{}

	s := a.Sections()
	require.NotEmpty(t, s)
	s[0].ID = "mutated"

	assert.NotEqual(t, "mutated", a.Sections()[0].ID)
}
