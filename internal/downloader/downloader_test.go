package downloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvind/mangasrc/internal/ui"
)

// plainGetter bypasses the rate-limited client; image payloads are not
// throttled in production either.
type plainGetter struct{}

func (plainGetter) Get(ctx context.Context, url, referer string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	return http.DefaultClient.Do(req)
}

func pageServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/pages/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpegbytes-" + filepath.Base(r.URL.Path)))
	})
	mux.HandleFunc("/missing.jpg", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestDownloadPages(t *testing.T) {
	server := pageServer(t)
	dir := t.TempDir()
	folder := filepath.Join(dir, "ch1_tmp")

	pm := ui.NewProgressManager()
	handle := pm.Register("ch1")

	d := New(plainGetter{}, ui.NewLogger(false), dir, false)
	files, bytes, err := d.DownloadPages(
		context.Background(),
		[]string{server.URL + "/pages/001.jpg", server.URL + "/pages/002.jpg"},
		folder, "", 2, handle,
	)
	pm.Close()

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Positive(t, bytes)

	// Zero-padded names keep page order independent of finish order.
	first, err := os.ReadFile(filepath.Join(folder, "page_001.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpegbytes-001.jpg", string(first))
}

func TestDownloadPagesSkipBroken(t *testing.T) {
	server := pageServer(t)
	dir := t.TempDir()
	folder := filepath.Join(dir, "ch2_tmp")

	pm := ui.NewProgressManager()
	handle := pm.Register("ch2")

	d := New(plainGetter{}, ui.NewLogger(false), dir, true)
	files, _, err := d.DownloadPages(
		context.Background(),
		[]string{server.URL + "/pages/001.jpg", server.URL + "/missing.jpg"},
		folder, "", 1, handle,
	)
	pm.Close()

	require.NoError(t, err, "skip-broken swallows page failures")
	assert.Len(t, files, 1)
}

func TestDownloadPagesFailsWithoutSkipBroken(t *testing.T) {
	server := pageServer(t)
	dir := t.TempDir()

	pm := ui.NewProgressManager()
	handle := pm.Register("ch3")

	d := New(plainGetter{}, ui.NewLogger(false), dir, false)
	_, _, err := d.DownloadPages(
		context.Background(),
		[]string{server.URL + "/missing.jpg"},
		filepath.Join(dir, "ch3_tmp"), "", 1, handle,
	)
	pm.Close()

	assert.Error(t, err)
}
