// Package normalize holds the shared helpers both site families lean on:
// status canonicalization, content-rating inference, rating rescaling,
// date parsing and slug/URL cleanup. Everything here is pure.
package normalize

import (
	"strings"
	"unicode"

	"github.com/corvind/mangasrc/internal/model"
)

var statusBuckets = []struct {
	canonical string
	needles   []string
}{
	{model.StatusOngoing, []string{"ongoing", "publishing", "releasing", "en cours"}},
	{model.StatusCompleted, []string{"completed", "complete", "finished"}},
	{model.StatusHiatus, []string{"hiatus", "on hold", "on-hold"}},
	{model.StatusCancelled, []string{"cancelled", "canceled", "dropped", "discontinued"}},
}

// Status maps free status text onto the four canonical buckets.
// Unrecognized text is title-cased and passed through.
func Status(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	low := strings.ToLower(s)
	for _, b := range statusBuckets {
		for _, n := range b.needles {
			if strings.Contains(low, n) {
				return b.canonical
			}
		}
	}

	return TitleCase(s)
}

// TitleCase upper-cases the first letter of every space-separated word.
// ASCII-oriented on purpose; site status strings are plain words.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}

	return strings.Join(words, " ")
}
