package likemanga

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvind/mangasrc/internal/model"
)

// Listing deliberately out of order: this family interleaves bonus
// chapters, so document order is 1, 5, 3.
const chapterFixture = `
<html><body>
<ul class="list-chapters">
  <li>
    <a class="chapter-name" href="/reader/manga/one-piece-chapter-1">Chapter 1</a>
    <span class="chapter-num">Chapter 1</span>
    <span class="chapter-time">Jan 5, 2024</span>
  </li>
  <li>
    <a class="chapter-name" href="/reader/manga/one-piece-chapter-5">Chapter 5</a>
    <span class="chapter-num">Chapter 5</span>
    <span class="chapter-time">2 hours ago</span>
  </li>
  <li><a class="chapter-name" href="#">Locked</a></li>
  <li>
    <a class="chapter-name" href="/reader/manga/one-piece-chapter-3">Chapter 3</a>
    <span class="chapter-num">Chapter 3</span>
    <span class="chapter-time">Feb 1, 2024</span>
  </li>
</ul>
</body></html>`

func TestParseChapterListResorts(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := testCtx
	ctx.Now = func() time.Time { return now }

	doc := mustDoc(t, chapterFixture)
	chapters, err := Adapter{}.ParseChapterList(doc, model.Manga{ID: "one-piece"}, ctx)
	require.NoError(t, err)

	require.Len(t, chapters, 3)

	// Descending by number regardless of document order.
	assert.Equal(t, 5.0, chapters[0].Number)
	assert.Equal(t, 3.0, chapters[1].Number)
	assert.Equal(t, 1.0, chapters[2].Number)

	assert.Equal(t, 3, chapters[0].SortingIndex)
	assert.Equal(t, 2, chapters[1].SortingIndex)
	assert.Equal(t, 1, chapters[2].SortingIndex)

	assert.Equal(t, "/reader/manga/one-piece-chapter-5", chapters[0].ChapterID)
	assert.Equal(t, now, chapters[0].PublishDate)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), chapters[1].PublishDate)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), chapters[2].PublishDate)
}

func TestParseChapterListStableOnTies(t *testing.T) {
	doc := mustDoc(t, `
<html><body>
<ul class="row-content-chapter">
  <li><a href="/reader/manga/x-side-a">Side Story A</a></li>
  <li><a href="/reader/manga/x-side-b">Side Story B</a></li>
</ul>
</body></html>`)

	chapters, err := Adapter{}.ParseChapterList(doc, model.Manga{ID: "x"}, testCtx)
	require.NoError(t, err)

	// Both parse to number 0; the stable sort keeps document order.
	require.Len(t, chapters, 2)
	assert.Equal(t, "/reader/manga/x-side-a", chapters[0].ChapterID)
	assert.Equal(t, "/reader/manga/x-side-b", chapters[1].ChapterID)
}
