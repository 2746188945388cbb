// Package downloader pulls chapter page images to disk for the archive
// command. It sits on the host-side fetch client, so page documents stay
// rate limited while image payloads are not.
package downloader

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/corvind/mangasrc/internal/ui"
)

// Getter is the slice of the fetch client the downloader needs.
type Getter interface {
	Get(ctx context.Context, url, referer string) (*http.Response, error)
}

type Downloader struct {
	client     Getter
	outputDir  string
	skipBroken bool
	log        *ui.Logger
}

func New(client Getter, log *ui.Logger, outputDir string, skipBroken bool) *Downloader {
	return &Downloader{
		client:     client,
		outputDir:  outputDir,
		skipBroken: skipBroken,
		log:        log,
	}
}

type chapterState struct {
	mu          sync.Mutex
	doneImages  int
	totalImages int
	doneBytes   int64
}

// DownloadPages fetches urls into folder with maxParallel workers and
// returns the written files plus total bytes. Page order is preserved
// through zero-padded file names.
func (d *Downloader) DownloadPages(
	ctx context.Context,
	urls []string,
	folder string,
	referer string,
	maxParallel int,
	ph *ui.ProgressHandle,
) ([]string, int64, error) {

	if err := os.MkdirAll(folder, 0755); err != nil {
		return nil, 0, err
	}

	total := len(urls)
	if maxParallel < 1 {
		maxParallel = 1
	}
	if maxParallel > total && total > 0 {
		maxParallel = total
	}

	cs := &chapterState{totalImages: total}
	ph.Update(0, total, 0)

	var filesMu sync.Mutex
	files := make([]string, 0, len(urls))
	errs := make([]error, 0, 4)

	jobs := make(chan int)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for i := range jobs {
			u := urls[i]

			ext := filepath.Ext(strings.SplitN(u, "?", 2)[0])
			if ext == "" {
				ext = ".jpg"
			}
			path := filepath.Join(folder, fmt.Sprintf("page_%03d%s", i+1, ext))

			var last int64
			progress := func(done int64) {
				delta := done - last
				if delta <= 0 {
					return
				}

				last = done
				cs.mu.Lock()
				cs.doneBytes += delta
				ph.Update(cs.doneImages, cs.totalImages, cs.doneBytes)
				cs.mu.Unlock()
			}

			if err := d.downloadWithRetry(ctx, u, path, referer, progress); err != nil {
				cs.mu.Lock()
				errs = append(errs, fmt.Errorf("page %d: %v", i+1, err))
				cs.doneImages++
				ph.Update(cs.doneImages, cs.totalImages, cs.doneBytes)
				cs.mu.Unlock()

				continue
			}

			filesMu.Lock()
			files = append(files, path)
			filesMu.Unlock()

			cs.mu.Lock()
			cs.doneImages++
			ph.Update(cs.doneImages, cs.totalImages, cs.doneBytes)
			cs.mu.Unlock()
		}
	}

	wg.Add(maxParallel)
	for w := 0; w < maxParallel; w++ {
		go worker()
	}

	for i := range urls {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			ph.MarkDone()
			return files, cs.doneBytes, ctx.Err()
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	ph.MarkDone()

	if len(errs) > 0 && !d.skipBroken {
		return files, cs.doneBytes, fmt.Errorf("failed %d/%d pages (use --skip-broken to continue)", len(errs), total)
	}
	for _, e := range errs {
		d.log.Warnf("%v\n", e)
	}

	return files, cs.doneBytes, nil
}

func (d *Downloader) downloadWithRetry(
	ctx context.Context,
	url string,
	output string,
	referer string,
	progress func(done int64),
) error {
	var err error
	for attempt := 1; attempt <= 3; attempt++ {
		err = d.download(ctx, url, output, referer, progress)
		if err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}

	return err
}

func (d *Downloader) download(
	ctx context.Context,
	u, output, referer string,
	progress func(done int64),
) (err error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := d.client.Get(ctx, u, referer)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, _, _ := mime.ParseMediaType(ct); !strings.HasPrefix(mt, "image/") {
			return fmt.Errorf("unexpected MIME: %s", ct)
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	written, err := copyWithProgress(f, resp.Body, progress)
	if err != nil {
		return err
	}

	if progress != nil && resp.ContentLength > 0 && written < resp.ContentLength {
		progress(resp.ContentLength)
	}

	return nil
}
