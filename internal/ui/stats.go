package ui

import "sync/atomic"

// PullStats aggregates counters across concurrent chapter downloads.
type PullStats struct {
	Chapters atomic.Int64
	Pages    atomic.Int64
	Bytes    atomic.Int64
}

// RecordChapter folds one finished chapter into the totals.
func (s *PullStats) RecordChapter(pages int, bytes int64) {
	s.Chapters.Add(1)
	s.Pages.Add(int64(pages))
	s.Bytes.Add(bytes)
}
