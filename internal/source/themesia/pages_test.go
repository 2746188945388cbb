package themesia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvind/mangasrc/internal/model"
)

const messyReaderFixture = `
<html><body>
<script>
ts_reader.run({"post_id":77,"sources":[{"source":"Server 1","images":['https://cdn.example/sl/3/001.jpg','https://cdn.example/sl/3/002.png','https://ts.example/wp-content/readerarea.svg',]}]});
</script>
<div id="readerarea"><img src="https://cdn.example/stale/000.jpg"></div>
</body></html>`

const strictReaderFixture = `
<html><body>
<script>
ts_reader.run({"post_id":77,"sources":[{"source":"Server 1","images":["https://cdn.example/sl/3/001.jpg","https://cdn.example/sl/3/002.png","https://ts.example/wp-content/readerarea.svg"]}]});
</script>
</body></html>`

func TestParseChapterPagesFromScript(t *testing.T) {
	doc := mustDoc(t, messyReaderFixture)

	pages, err := Adapter{}.ParseChapterPages(doc, model.Chapter{}, testCtx)
	require.NoError(t, err)

	// Script wins over rendered images; the svg placeholder is dropped.
	assert.Equal(t, []string{
		"https://cdn.example/sl/3/001.jpg",
		"https://cdn.example/sl/3/002.png",
	}, pages)
}

func TestParseChapterPagesMalformedEqualsStrict(t *testing.T) {
	messy := mustDoc(t, messyReaderFixture)
	strict := mustDoc(t, strictReaderFixture)

	a, err := Adapter{}.ParseChapterPages(messy, model.Chapter{}, testCtx)
	require.NoError(t, err)
	b, err := Adapter{}.ParseChapterPages(strict, model.Chapter{}, testCtx)
	require.NoError(t, err)

	assert.Equal(t, b, a)
}

func TestParseChapterPagesReaderAreaFallback(t *testing.T) {
	doc := mustDoc(t, `
<html><body>
<div id="readerarea">
  <img src="https://ts.example/wp-content/readerarea.svg" data-src="https://cdn.example/sl/3/001.jpg">
  <img src="https://cdn.example/sl/3/002.jpg">
  <img src="https://cdn.example/sl/3/002.jpg">
</div>
</body></html>`)

	pages, err := Adapter{}.ParseChapterPages(doc, model.Chapter{}, testCtx)
	require.NoError(t, err)

	// Duplicates are intentional: repeated page URLs are kept in order.
	assert.Equal(t, []string{
		"https://cdn.example/sl/3/001.jpg",
		"https://cdn.example/sl/3/002.jpg",
		"https://cdn.example/sl/3/002.jpg",
	}, pages)
}

func TestParseChapterPagesNothingFound(t *testing.T) {
	doc := mustDoc(t, `<html><body><p>challenge page</p></body></html>`)

	pages, err := Adapter{}.ParseChapterPages(doc, model.Chapter{}, testCtx)
	require.NoError(t, err)
	assert.Empty(t, pages)
}
