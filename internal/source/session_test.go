package source

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvind/mangasrc/internal/markup"
	"github.com/corvind/mangasrc/internal/model"
)

type fakeAdapter struct{}

func (fakeAdapter) Key() string  { return "fake" }
func (fakeAdapter) Name() string { return "Fake" }

func (fakeAdapter) ParseMangaDetails(_ *goquery.Document, id string, _ Context) (model.Manga, error) {
	return model.Manga{ID: id, Title: "T"}, nil
}

func (fakeAdapter) ParseChapterList(_ *goquery.Document, manga model.Manga, _ Context) ([]model.Chapter, error) {
	return []model.Chapter{{MangaID: manga.ID, ChapterID: "/c1"}}, nil
}

func (fakeAdapter) ParseChapterPages(_ *goquery.Document, _ model.Chapter, _ Context) ([]string, error) {
	return []string{"https://cdn.example/1.jpg"}, nil
}

func (fakeAdapter) ParseSearchResults(_ *goquery.Document, _ int, _ bool, _ Context) (model.SearchPage, error) {
	return model.SearchPage{}, nil
}

func (fakeAdapter) ParseDiscoverSection(_ *goquery.Document, _ Section, _ Context) ([]model.DiscoverItem, error) {
	return nil, nil
}

func (fakeAdapter) ParseFilterOptions(_ *goquery.Document) (model.FilterOptions, error) {
	return model.FilterOptions{Genres: []model.Option{{ID: "1", Label: "Action"}}}, nil
}

func (fakeAdapter) ParseSortOptions(_ *goquery.Document) ([]model.Option, error) {
	return []model.Option{{ID: "latest", Label: "Latest"}}, nil
}

func (fakeAdapter) CleanID(raw string) string { return raw }

func (fakeAdapter) DetailURL(id string, ctx Context) string { return ctx.Domain + "/manga/" + id }
func (fakeAdapter) ChapterURL(id string, ctx Context) string {
	return ctx.Domain + id
}
func (fakeAdapter) SearchURL(query string, page int, ctx Context) string {
	return fmt.Sprintf("%s/search?q=%s&page=%d", ctx.Domain, query, page)
}
func (fakeAdapter) HomeURL(ctx Context) string       { return ctx.Domain + "/" }
func (fakeAdapter) FilterPageURL(ctx Context) string { return ctx.Domain + "/filters" }
func (fakeAdapter) Sections() []Section              { return nil }

type countingFetcher struct {
	mu   sync.Mutex
	urls []string
}

func (f *countingFetcher) GetDocument(_ context.Context, url string) (*goquery.Document, error) {
	f.mu.Lock()
	f.urls = append(f.urls, url)
	f.mu.Unlock()

	return markup.Load([]byte("<html><body></body></html>"))
}

func (f *countingFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.urls)
}

func newTestSession() (*Session, *countingFetcher) {
	f := &countingFetcher{}

	return NewSession(fakeAdapter{}, f, Context{Domain: "https://x.example"}), f
}

func TestSessionFilterOptionsCached(t *testing.T) {
	sess, f := newTestSession()
	ctx := context.Background()

	first, err := sess.FilterOptions(ctx)
	require.NoError(t, err)
	second, err := sess.FilterOptions(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.count(), "second call must hit the cache")
}

func TestSessionSortOptionsCachedSeparately(t *testing.T) {
	sess, f := newTestSession()
	ctx := context.Background()

	_, err := sess.FilterOptions(ctx)
	require.NoError(t, err)
	_, err = sess.SortOptions(ctx)
	require.NoError(t, err)
	_, err = sess.SortOptions(ctx)
	require.NoError(t, err)

	// One fetch per cache, no more.
	assert.Equal(t, 2, f.count())
}

func TestSessionSearchClampsPage(t *testing.T) {
	sess, f := newTestSession()

	_, err := sess.Search(context.Background(), "solo", 0)
	require.NoError(t, err)

	require.Equal(t, 1, f.count())
	assert.Equal(t, "https://x.example/search?q=solo&page=1", f.urls[0])
}

func TestSessionChapterListFetchesDetailPage(t *testing.T) {
	sess, f := newTestSession()

	chapters, err := sess.ChapterList(context.Background(), model.Manga{ID: "solo"})
	require.NoError(t, err)
	require.Len(t, chapters, 1)

	require.Equal(t, 1, f.count())
	assert.Equal(t, "https://x.example/manga/solo", f.urls[0])
}

func TestRegistry(t *testing.T) {
	Register(fakeAdapter{})

	a, err := Get("fake")
	require.NoError(t, err)
	assert.Equal(t, "Fake", a.Name())

	_, err = Get("nope")
	assert.Error(t, err)

	assert.Contains(t, Keys(), "fake")
}
