package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/corvind/mangasrc/internal/model"
)

// Fixed keyword tables. Content rating is inferred from genre tags and
// nothing else; free text never participates.
var (
	adultGenres = map[string]bool{
		"adult":   true,
		"hentai":  true,
		"smut":    true,
		"erotica": true,
	}

	matureGenres = map[string]bool{
		"mature":   true,
		"ecchi":    true,
		"gore":     true,
		"violence": true,
		"harem":    true,
	}
)

// ContentRating classifies a genre list: ADULT if any genre is in the
// adult set, else MATURE if any is in the mature set, else the fallback.
func ContentRating(genres []string, fallback model.ContentRating) model.ContentRating {
	if fallback == "" {
		fallback = model.RatingEveryone
	}

	mature := false
	for _, g := range genres {
		key := strings.ToLower(strings.TrimSpace(g))
		if adultGenres[key] {
			return model.RatingAdult
		}
		if matureGenres[key] {
			mature = true
		}
	}

	if mature {
		return model.RatingMature
	}

	return fallback
}

var reDecimal = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// Rating parses the first decimal in raw and rescales it from the site's
// scale (10 for themesia, 5 for likemanga) to 0-1. Absent or unparseable
// input yields nil so the field can be omitted instead of defaulting to 0.
func Rating(raw string, scale float64) *float64 {
	if scale <= 0 {
		return nil
	}

	m := reDecimal.FindString(raw)
	if m == "" {
		return nil
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
	if err != nil {
		return nil
	}

	v /= scale
	if v < 0 || v > 1 {
		return nil
	}

	return &v
}
