package themesia

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
	Domain:        "https://ts.example",
	Language:      "en",
	DefaultRating: model.RatingEveryone,
}

const detailsFixture = `
<html><body>
<h1 class="entry-title">Solo Leveling</h1>
<div class="thumb"><img src="/covers/solo.jpg"></div>
<div class="imptdt">Status <i>OnGoing</i></div>
<div class="imptdt">Author <i>Chugong</i></div>
<div class="fmed"><b>Artist</b> <span>DUBU</span></div>
<div class="seriestugenre">
  <a href="/genres/action/">Action</a>
  <a href="/genres/debug/">DEBUG</a>
  <a href="/genres/mature/">Mature</a>
</div>
<div itemprop="description"><p>The weakest hunter levels up alone.</p></div>
<div class="rating"><div itemprop="ratingValue" content="8.5"></div><div class="num">8.5</div></div>
</body></html>`

func TestParseMangaDetails(t *testing.T) {
	doc := mustDoc(t, detailsFixture)

	m, err := Adapter{}.ParseMangaDetails(doc, "solo-leveling", testCtx)
	require.NoError(t, err)

	assert.Equal(t, "solo-leveling", m.ID)
	assert.Equal(t, "https://ts.example/manga/solo-leveling/", m.ShareURL)
	assert.Equal(t, "Solo Leveling", m.Title)
	assert.Equal(t, "Chugong", m.Author)
	assert.Equal(t, "DUBU", m.Artist)
	assert.Equal(t, "The weakest hunter levels up alone.", m.Synopsis)
	assert.Equal(t, model.StatusOngoing, m.Status)
	assert.Equal(t, "https://ts.example/covers/solo.jpg", m.ThumbnailURL)

	require.NotNil(t, m.Rating)
	assert.InDelta(t, 0.85, *m.Rating, 1e-9)
}

func TestParseMangaDetailsFiltersDebugTag(t *testing.T) {
	doc := mustDoc(t, detailsFixture)

	m, err := Adapter{}.ParseMangaDetails(doc, "solo-leveling", testCtx)
	require.NoError(t, err)

	require.Len(t, m.TagGroups, 1)
	tags := m.TagGroups[0].Tags
	require.Len(t, tags, 2)
	assert.Equal(t, "Action", tags[0].Title)
	assert.Equal(t, "Mature", tags[1].Title)
}

func TestParseMangaDetailsContentRatingFromGenres(t *testing.T) {
	doc := mustDoc(t, detailsFixture)

	m, err := Adapter{}.ParseMangaDetails(doc, "solo-leveling", testCtx)
	require.NoError(t, err)
	assert.Equal(t, model.RatingMature, m.ContentRating)
}

func TestParseMangaDetailsDefaults(t *testing.T) {
	doc := mustDoc(t, `<html><body><h1 class="entry-title">Bare</h1></body></html>`)

	m, err := Adapter{}.ParseMangaDetails(doc, "bare", testCtx)
	require.NoError(t, err)

	assert.Equal(t, model.RatingEveryone, m.ContentRating)
	assert.Nil(t, m.Rating, "missing score must stay nil, not zero")
	assert.Empty(t, m.TagGroups)
	assert.Equal(t, "", m.Status)
	assert.Equal(t, "", m.ThumbnailURL)
}

func TestShareURLRoundTripsWithCleanID(t *testing.T) {
	a := Adapter{}

	url := a.DetailURL("solo-leveling", testCtx)
	assert.Equal(t, "solo-leveling", a.CleanID(url))
}
