package httpapi

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/docsage-labs/docsage-cli/internal/core/ports/driving"
	"github.com/docsage-labs/docsage-cli/internal/logger"
)

// settleDelay is how long the watcher waits after the last filesystem
// event before re-ingesting, so partially written PDFs are not picked
// up mid-copy.
const settleDelay = 2 * time.Second

// Watcher re-ingests the PDF inbox whenever a PDF is added or
// rewritten in it.
type Watcher struct {
	query driving.QueryService
	dir   string
}

// NewWatcher creates a watcher over the given inbox directory.
func NewWatcher(query driving.QueryService, dir string) *Watcher {
	return &Watcher{query: query, dir: dir}
}

// Run watches the inbox until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return err
	}

	logger.Info("Watching %s for new PDFs", w.dir)

	var settle *time.Timer
	var settleC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			logger.Debug("Inbox change: %s %s", event.Op, event.Name)
			if settle == nil {
				settle = time.NewTimer(settleDelay)
				settleC = settle.C
			} else {
				settle.Reset(settleDelay)
			}

		case <-settleC:
			settle, settleC = nil, nil
			if n, err := w.query.Ingest(ctx, w.dir); err != nil {
				logger.Error("inbox ingestion failed: %v", err)
			} else {
				logger.Info("Inbox re-ingested: %d documents", n)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// relevantEvent reports whether the event should trigger re-ingestion:
// a PDF created, written or renamed into the inbox.
func relevantEvent(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".pdf") {
		return false
	}
	return event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Rename)
}
