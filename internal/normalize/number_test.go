package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChapterNumberFromElementText(t *testing.T) {
	assert.Equal(t, 28.5, ChapterNumber("Chapter 28.5", "/whatever/"))
	assert.Equal(t, 3.0, ChapterNumber("Ch. 3 - The Gate", ""))
}

func TestChapterNumberFromID(t *testing.T) {
	// Hyphenated decimals in slugs read as decimal points.
	assert.Equal(t, 28.5, ChapterNumber("", "/solo-leveling-chapter-28-5/"))
	assert.Equal(t, 104.0, ChapterNumber("", "/one-piece-ch_104"))
}

func TestChapterNumberTrailingDecimal(t *testing.T) {
	assert.Equal(t, 1094.0, ChapterNumber("", "/read/one-piece/1094"))
}

func TestChapterNumberDefaultsToZero(t *testing.T) {
	assert.Equal(t, 0.0, ChapterNumber("", "/extras/omake/"))
	assert.Equal(t, 0.0, ChapterNumber("", ""))
}

func TestValidPageImage(t *testing.T) {
	assert.True(t, ValidPageImage("https://cdn.example/p/001.jpg"))
	assert.False(t, ValidPageImage(""))
	assert.False(t, ValidPageImage("https://site.example/wp-content/readerarea.svg"))
	assert.False(t, ValidPageImage("data:image/svg+xml;base64,xyz"))
	assert.False(t, ValidPageImage("https://site.example/assets/images/blank.gif"))
}
