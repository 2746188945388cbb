package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvind/mangasrc/internal/model"
)

func listing() []model.Chapter {
	return []model.Chapter{
		{ChapterID: "/ch-30", Number: 30},
		{ChapterID: "/ch-28-5", Number: 28.5},
		{ChapterID: "/ch-28", Number: 28},
		{ChapterID: "/ch-27", Number: 27},
	}
}

func TestFilterChaptersByNumber(t *testing.T) {
	got := FilterChapters(listing(), "28.5", "", "")
	require.Len(t, got, 1)
	assert.Equal(t, "/ch-28-5", got[0].ChapterID)
}

func TestFilterChaptersIndexFallback(t *testing.T) {
	// No chapter numbered 2, so "2" reads as the second listing entry.
	got := FilterChapters(listing(), "2", "", "")
	require.Len(t, got, 1)
	assert.Equal(t, "/ch-28-5", got[0].ChapterID)
}

func TestFilterChaptersRange(t *testing.T) {
	got := FilterChapters(listing(), "", "2-4", "")
	require.Len(t, got, 3)
	assert.Equal(t, "/ch-28-5", got[0].ChapterID)
	assert.Equal(t, "/ch-27", got[2].ChapterID)

	assert.Nil(t, FilterChapters(listing(), "", "3-99", ""))
	assert.Nil(t, FilterChapters(listing(), "", "4-2", ""))
}

func TestFilterChaptersList(t *testing.T) {
	got := FilterChapters(listing(), "", "", "1, 4, 99")
	require.Len(t, got, 2)
	assert.Equal(t, "/ch-30", got[0].ChapterID)
	assert.Equal(t, "/ch-27", got[1].ChapterID)
}

func TestFilterChaptersDefaultAll(t *testing.T) {
	assert.Len(t, FilterChapters(listing(), "", "", ""), 4)
}
