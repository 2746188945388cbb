// Package model holds the canonical content entities produced by the site
// adapters. Entities are plain value objects: each extraction call builds
// them fresh and keeps no reference to the document they came from.
package model

import "time"

type ContentRating string

const (
	RatingEveryone ContentRating = "EVERYONE"
	RatingMature   ContentRating = "MATURE"
	RatingAdult    ContentRating = "ADULT"
)

// Canonical status buckets. Anything a site reports outside these four is
// title-cased and passed through verbatim.
const (
	StatusOngoing   = "Ongoing"
	StatusCompleted = "Completed"
	StatusHiatus    = "Hiatus"
	StatusCancelled = "Cancelled"
)

type Tag struct {
	ID    string
	Title string
}

type TagGroup struct {
	ID    string
	Title string
	Tags  []Tag
}

type Manga struct {
	ID            string // site-local slug, round-trips to the detail URL
	ShareURL      string
	Title         string
	AltTitles     []string
	ThumbnailURL  string
	Author        string
	Artist        string
	Synopsis      string
	TagGroups     []TagGroup
	ContentRating ContentRating
	Status        string
	Rating        *float64 // 0-1 scale, nil when the source has none
}

type Chapter struct {
	MangaID      string
	ChapterID    string // relative path, unique within a manga
	Language     string
	Number       float64
	Title        string
	PublishDate  time.Time
	SortingIndex int // higher = newer, contiguous within one listing
}

type SearchItem struct {
	MangaID  string
	Title    string
	ImageURL string
	Subtitle string
}

// SearchPage is one page of search/browse results plus a continuation flag.
type SearchPage struct {
	Items       []SearchItem
	HasNextPage bool
}

type DiscoverKind string

const (
	KindFeatured          DiscoverKind = "featured"
	KindProminentCarousel DiscoverKind = "prominentCarousel"
	KindSimpleCarousel    DiscoverKind = "simpleCarousel"
)

type DiscoverItem struct {
	SearchItem
	Kind DiscoverKind
}

type Option struct {
	ID    string
	Label string
}

// FilterOptions is the per-session cache of a site's filter form: genre,
// status and type choices plus a lowercased genre-label lookup.
type FilterOptions struct {
	Genres         []Option
	Statuses       []Option
	Types          []Option
	GenreIDByLabel map[string]string
}
