package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvind/mangasrc/internal/model"
)

// Fetcher is the host-side collaborator that gets a URL and hands back a
// parsed document. The core never issues requests on its own.
type Fetcher interface {
	GetDocument(ctx context.Context, url string) (*goquery.Document, error)
}

// Session sequences fetch -> load -> extract for one adapter and owns the
// two per-session caches (filter options, sort options). Caches fill
// lazily and are never invalidated; concurrent first calls may fetch
// twice, which only costs a redundant request.
type Session struct {
	adapter Adapter
	fetcher Fetcher
	extract Context

	mu      sync.Mutex
	filters *model.FilterOptions
	sorts   []model.Option
}

func NewSession(a Adapter, f Fetcher, extract Context) *Session {
	return &Session{adapter: a, fetcher: f, extract: extract}
}

func (s *Session) Adapter() Adapter { return s.adapter }

func (s *Session) MangaDetails(ctx context.Context, id string) (model.Manga, error) {
	doc, err := s.get(ctx, s.adapter.DetailURL(id, s.extract))
	if err != nil {
		return model.Manga{}, err
	}

	return s.adapter.ParseMangaDetails(doc, id, s.extract)
}

// ChapterList re-fetches the detail page; both template families render
// the chapter listing there.
func (s *Session) ChapterList(ctx context.Context, manga model.Manga) ([]model.Chapter, error) {
	doc, err := s.get(ctx, s.adapter.DetailURL(manga.ID, s.extract))
	if err != nil {
		return nil, err
	}

	return s.adapter.ParseChapterList(doc, manga, s.extract)
}

func (s *Session) ChapterPages(ctx context.Context, chapter model.Chapter) ([]string, error) {
	doc, err := s.get(ctx, s.adapter.ChapterURL(chapter.ChapterID, s.extract))
	if err != nil {
		return nil, err
	}

	return s.adapter.ParseChapterPages(doc, chapter, s.extract)
}

func (s *Session) Search(ctx context.Context, query string, page int) (model.SearchPage, error) {
	if page < 1 {
		page = 1
	}

	doc, err := s.get(ctx, s.adapter.SearchURL(query, page, s.extract))
	if err != nil {
		return model.SearchPage{}, err
	}

	return s.adapter.ParseSearchResults(doc, page, query != "", s.extract)
}

func (s *Session) Discover(ctx context.Context, section Section) ([]model.DiscoverItem, error) {
	doc, err := s.get(ctx, s.adapter.HomeURL(s.extract))
	if err != nil {
		return nil, err
	}

	return s.adapter.ParseDiscoverSection(doc, section, s.extract)
}

func (s *Session) FilterOptions(ctx context.Context) (model.FilterOptions, error) {
	s.mu.Lock()
	if s.filters != nil {
		opts := *s.filters
		s.mu.Unlock()
		return opts, nil
	}
	s.mu.Unlock()

	doc, err := s.get(ctx, s.adapter.FilterPageURL(s.extract))
	if err != nil {
		return model.FilterOptions{}, err
	}

	opts, err := s.adapter.ParseFilterOptions(doc)
	if err != nil {
		return model.FilterOptions{}, err
	}

	s.mu.Lock()
	s.filters = &opts
	s.mu.Unlock()

	return opts, nil
}

func (s *Session) SortOptions(ctx context.Context) ([]model.Option, error) {
	s.mu.Lock()
	if s.sorts != nil {
		opts := s.sorts
		s.mu.Unlock()
		return opts, nil
	}
	s.mu.Unlock()

	doc, err := s.get(ctx, s.adapter.FilterPageURL(s.extract))
	if err != nil {
		return nil, err
	}

	opts, err := s.adapter.ParseSortOptions(doc)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = []model.Option{}
	}

	s.mu.Lock()
	s.sorts = opts
	s.mu.Unlock()

	return opts, nil
}

func (s *Session) get(ctx context.Context, url string) (*goquery.Document, error) {
	doc, err := s.fetcher.GetDocument(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.adapter.Key(), err)
	}

	return doc, nil
}
