package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvind/mangasrc/internal/model"
)

func TestStatusCanonicalBuckets(t *testing.T) {
	cases := map[string]string{
		"OnGoing":       model.StatusOngoing,
		"Publishing":    model.StatusOngoing,
		"releasing":     model.StatusOngoing,
		"Completed":     model.StatusCompleted,
		"FINISHED":      model.StatusCompleted,
		"on hold":       model.StatusHiatus,
		"Hiatus":        model.StatusHiatus,
		"dropped":       model.StatusCancelled,
		"Canceled":      model.StatusCancelled,
		"discontinued":  model.StatusCancelled,
		" ongoing\n":    model.StatusOngoing,
		"Season ended!": "Season Ended!",
	}

	for raw, want := range cases {
		assert.Equal(t, want, Status(raw), "raw=%q", raw)
	}
}

func TestStatusEmptyStaysEmpty(t *testing.T) {
	assert.Equal(t, "", Status(""))
	assert.Equal(t, "", Status("   "))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Coming Soon", TitleCase("COMING soon"))
	assert.Equal(t, "Axed", TitleCase("axed"))
}
