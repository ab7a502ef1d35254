package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler receives the base names of documents that changed and have been
// quiet for the debounce window
type Handler func(ctx context.Context, changed []string)

// Stats counts watcher activity
type Stats struct {
	Created       int
	Modified      int
	Removed       int
	Batches       int
	Errors        int
	LastEventTime time.Time
	LastEventPath string
}

// Watcher reports document changes in a corpus directory
type Watcher struct {
	mu         sync.Mutex
	watcher    *fsnotify.Watcher
	dir        string
	extensions []string
	debounce   time.Duration
	onChange   Handler
	pending    map[string]time.Time
	stopCh     chan struct{}
	doneCh     chan struct{}
	running    bool
	stats      Stats
	logger     *slog.Logger
}

// New creates a watcher over dir. Only files with one of extensions
// (case-insensitive) are reported.
func New(dir string, extensions []string, debounce time.Duration, onChange Handler, logger *slog.Logger) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("watch: change handler is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	exts := make([]string, len(extensions))
	for i, ext := range extensions {
		exts[i] = strings.ToLower(ext)
	}

	return &Watcher{
		watcher:    watcher,
		dir:        dir,
		extensions: exts,
		debounce:   debounce,
		onChange:   onChange,
		pending:    make(map[string]time.Time),
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
		logger:     logger.With(slog.String("component", "watcher")),
	}, nil
}

// Start begins watching. It does not block; the event loop ends on Stop or
// when ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.running = true

	w.logger.InfoContext(ctx, "watching documents",
		slog.String("directory", w.dir),
		slog.Duration("debounce", w.debounce))

	go w.run(ctx)
	return nil
}

// Stop ends the event loop and releases the watcher. It is safe to call
// more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("error closing watcher", slog.String("error", err.Error()))
	}
	w.logger.Info("watcher stopped")
}

// Stats returns a snapshot of the counters
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.tick())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.DebugContext(ctx, "watcher context cancelled")
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.ErrorContext(ctx, "watcher error", slog.String("error", err.Error()))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

// tick is the polling period for settled events
func (w *Watcher) tick() time.Duration {
	t := w.debounce / 2
	if t > 100*time.Millisecond {
		t = 100 * time.Millisecond
	}
	if t < 10*time.Millisecond {
		t = 10 * time.Millisecond
	}
	return t
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	name := filepath.Base(event.Name)
	if !w.isDocument(name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case event.Has(fsnotify.Create):
		w.stats.Created++
	case event.Has(fsnotify.Write):
		w.stats.Modified++
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.stats.Removed++
	default:
		// chmod
		return
	}

	w.stats.LastEventTime = time.Now()
	w.stats.LastEventPath = event.Name
	w.pending[name] = time.Now()

	w.logger.DebugContext(ctx, "document event",
		slog.String("document", name),
		slog.String("op", event.Op.String()))
}

// flush hands settled documents to the handler in one sorted batch
func (w *Watcher) flush(ctx context.Context) {
	w.mu.Lock()
	now := time.Now()
	var settled []string
	for name, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			settled = append(settled, name)
			delete(w.pending, name)
		}
	}
	if len(settled) > 0 {
		w.stats.Batches++
	}
	w.mu.Unlock()

	if len(settled) == 0 {
		return
	}
	slices.Sort(settled)

	w.logger.InfoContext(ctx, "documents changed", slog.Any("documents", settled))
	w.onChange(ctx, settled)
}

func (w *Watcher) isDocument(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext != "" && slices.Contains(w.extensions, ext)
}
