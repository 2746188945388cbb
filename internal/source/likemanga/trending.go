package likemanga

import (
	"encoding/json"
	"fmt"

	"github.com/corvind/mangasrc/internal/model"
)

// The home page ships data attributes referencing a JSON trending feed,
// but no deployment observed so far actually calls it from the main
// flow. The decoder is kept as a reserved capability rather than wired
// into ParseDiscoverSection.

type TrendingFeed struct {
	Status string          `json:"status"`
	Data   []TrendingEntry `json:"data"`
}

type TrendingEntry struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Cover string `json:"cover"`
	Views int    `json:"views"`
}

func DecodeTrending(raw []byte) (TrendingFeed, error) {
	var feed TrendingFeed
	if err := json.Unmarshal(raw, &feed); err != nil {
		return TrendingFeed{}, fmt.Errorf("likemanga: trending feed: %w", err)
	}

	return feed, nil
}

// Items projects the feed onto search items, dropping entries without a
// slug or name.
func (f TrendingFeed) Items() []model.SearchItem {
	var out []model.SearchItem
	for _, e := range f.Data {
		if e.Slug == "" || e.Name == "" {
			continue
		}

		out = append(out, model.SearchItem{
			MangaID:  e.Slug,
			Title:    e.Name,
			ImageURL: e.Cover,
		})
	}

	return out
}
