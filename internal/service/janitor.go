package service

import (
	"context"
	"sync"

	"portfolio_backend/internal/blob"
	"portfolio_backend/internal/logger"
)

// janitor deletes orphaned blobs in the background. Cleanup is best-effort:
// failures are logged and never retried, and HTTP responses never wait on
// it. The detached goroutines are tracked so tests can drain them.
type janitor struct {
	blobs blob.Store
	log   *logger.Logger
	wg    sync.WaitGroup
}

func newJanitor(blobs blob.Store, log *logger.Logger) *janitor {
	return &janitor{blobs: blobs, log: log}
}

// discard schedules deletion of the given blob URLs and returns immediately.
func (j *janitor) discard(urls []string) {
	if len(urls) == 0 {
		return
	}

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		for _, url := range urls {
			if err := j.blobs.Delete(context.Background(), url); err != nil {
				if j.log != nil {
					j.log.Warnw("blob_delete_failed", "url", url, "err", err)
				}
			}
		}
	}()
}

// wait blocks until all scheduled deletions have run.
func (j *janitor) wait() {
	j.wg.Wait()
}
