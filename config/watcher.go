package config

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/logger"
)

// ChangeCallback is called with the files changed since the last call
type ChangeCallback func(changed []string) error

// watchedExtensions are the inputs of a generation run
var watchedExtensions = map[string]bool{
	".xml":  true,
	".yaml": true,
	".yml":  true,
	".toml": true,
}

// ResourceWatcher watches input directories and reports batches of changes.
// Rapid changes are debounced into one batch and batches are rate limited.
type ResourceWatcher struct {
	watcher   *fsnotify.Watcher
	log       *zap.SugaredLogger
	callbacks []ChangeCallback
	ignored   []string

	mu             sync.Mutex
	pending        map[string]bool
	debounceTimer  *time.Timer
	debouncePeriod time.Duration

	limiter *rate.Limiter
	runMu   sync.Mutex
}

// WatchOptions configures a ResourceWatcher
type WatchOptions struct {
	// Roots are watched recursively when they are directories
	Roots []string
	// Ignore lists directories whose events are dropped (e.g. the output)
	Ignore []string

	Debounce     time.Duration
	MaxPerMinute int // 0 = unlimited
}

// NewResourceWatcher starts watching every root.
func NewResourceWatcher(opts WatchOptions, log *zap.SugaredLogger) (*ResourceWatcher, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	limit := rate.Inf
	if opts.MaxPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.MaxPerMinute))
	}

	rw := &ResourceWatcher{
		watcher:        watcher,
		log:            log,
		pending:        make(map[string]bool),
		debouncePeriod: opts.Debounce,
		limiter:        rate.NewLimiter(limit, 1),
	}
	for _, dir := range opts.Ignore {
		rw.ignored = append(rw.ignored, filepath.Clean(dir))
	}

	for _, root := range opts.Roots {
		if err := rw.add(root); err != nil {
			watcher.Close()
			return nil, err
		}
	}
	return rw, nil
}

// OnChange registers a callback to be called after a batch of changes
func (rw *ResourceWatcher) OnChange(callback ChangeCallback) {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	rw.callbacks = append(rw.callbacks, callback)
}

// Run processes file system events until ctx is cancelled.
func (rw *ResourceWatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			rw.mu.Lock()
			if rw.debounceTimer != nil {
				rw.debounceTimer.Stop()
			}
			rw.mu.Unlock()
			return nil

		case event, ok := <-rw.watcher.Events:
			if !ok {
				return nil
			}
			rw.handle(ctx, event)

		case err, ok := <-rw.watcher.Errors:
			if !ok {
				return nil
			}
			rw.log.Warnw("Resource watcher error",
				logger.FieldError, err)
		}
	}
}

// Stop stops watching
func (rw *ResourceWatcher) Stop() error {
	return rw.watcher.Close()
}

func (rw *ResourceWatcher) handle(ctx context.Context, event fsnotify.Event) {
	if rw.isIgnored(event.Name) {
		return
	}

	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := rw.add(event.Name); err != nil {
				rw.log.Warnw("Failed to watch new directory",
					logger.FieldPath, event.Name,
					logger.FieldError, err)
			}
			return
		}
	}

	if !watchedExtensions[strings.ToLower(filepath.Ext(event.Name))] {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	rw.log.Debugw("Resource change",
		logger.FieldFile, event.Name,
		"op", event.Op.String())
	rw.schedule(ctx, event.Name)
}

// schedule debounces rapid file changes into one batch
func (rw *ResourceWatcher) schedule(ctx context.Context, path string) {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	rw.pending[path] = true
	if rw.debounceTimer != nil {
		rw.debounceTimer.Stop()
	}
	rw.debounceTimer = time.AfterFunc(rw.debouncePeriod, func() {
		rw.fire(ctx)
	})
}

func (rw *ResourceWatcher) fire(ctx context.Context) {
	rw.runMu.Lock()
	defer rw.runMu.Unlock()

	if err := rw.limiter.Wait(ctx); err != nil {
		return
	}

	rw.mu.Lock()
	changed := make([]string, 0, len(rw.pending))
	for p := range rw.pending {
		changed = append(changed, p)
	}
	rw.pending = make(map[string]bool)
	callbacks := make([]ChangeCallback, len(rw.callbacks))
	copy(callbacks, rw.callbacks)
	rw.mu.Unlock()

	if len(changed) == 0 {
		return
	}
	sort.Strings(changed)

	for _, callback := range callbacks {
		if err := callback(changed); err != nil {
			rw.log.Warnw("Change callback failed",
				logger.FieldError, err)
		}
	}
}

func (rw *ResourceWatcher) add(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Wrapf(err, "failed to watch %s", root)
	}
	if !info.IsDir() {
		return errors.Wrapf(rw.watcher.Add(root), "failed to watch %s", root)
	}

	return filepath.WalkDir(root, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !e.IsDir() {
			return nil
		}
		if rw.isIgnored(path) {
			return filepath.SkipDir
		}
		if err := rw.watcher.Add(path); err != nil {
			return errors.Wrapf(err, "failed to watch %s", path)
		}
		return nil
	})
}

func (rw *ResourceWatcher) isIgnored(path string) bool {
	path = filepath.Clean(path)
	for _, dir := range rw.ignored {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
