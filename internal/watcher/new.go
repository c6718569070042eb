package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

// Option configures the Watcher.
type Option func(*implWatcher)

// WithSettleDelay sets how long to wait after a create event before the file
// is handed over, so the copy into the inbox can finish.
func WithSettleDelay(d time.Duration) Option {
	return func(w *implWatcher) {
		w.settleDelay = d
	}
}

// New creates a Watcher on inboxDir. Files are handled one at a time.
func New(inboxDir string, handler EventHandler, log logger.Logger, opts ...Option) (Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fw.Add(inboxDir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	w := &implWatcher{
		inboxDir:    inboxDir,
		handler:     handler,
		logger:      log,
		watcher:     fw,
		settleDelay: defaultSettleDelay,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}
