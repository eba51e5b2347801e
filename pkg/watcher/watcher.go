package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FileWatcher watches files for changes and triggers callbacks
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	logger    *zap.SugaredLogger
	mu        sync.Mutex
	callbacks map[string]func(string)
	dirs      map[string]int
	debounce  time.Duration
	timers    map[string]*time.Timer
	done      chan struct{}
	closeOnce sync.Once
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration, logger *zap.SugaredLogger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create watcher")
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &FileWatcher{
		watcher:   watcher,
		logger:    logger,
		callbacks: make(map[string]func(string)),
		dirs:      make(map[string]int),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
		done:      make(chan struct{}),
	}, nil
}

// Watch starts watching the specified files. callback is called with the
// absolute path of a file after it was written or replaced. The parent
// directory is watched so that editors saving through a rename are noticed.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve path %s", file)
		}

		dir := filepath.Dir(absPath)
		if fw.dirs[dir] == 0 {
			if err := fw.watcher.Add(dir); err != nil {
				return errors.Wrapf(err, "failed to watch %s", dir)
			}
		}
		if _, exists := fw.callbacks[absPath]; !exists {
			fw.dirs[dir]++
		}

		fw.callbacks[absPath] = callback
	}

	return nil
}

// Start begins watching for file changes in a background goroutine that
// runs until Close is called
func (fw *FileWatcher) Start() {
	go func() {
		defer close(fw.done)
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}

				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					fw.handleFileChange(filepath.Clean(event.Name))
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fw.logger.Warnw("watcher error", "error", err)
			}
		}
	}()
}

// handleFileChange handles a file change event with debouncing
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[filePath]
	if !exists {
		return
	}
	fw.logger.Debugw("file changed", "path", filePath)

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		callback(filePath)
	})
}

// Close stops the watcher, pending callbacks, and the background goroutine
func (fw *FileWatcher) Close() error {
	var err error
	fw.closeOnce.Do(func() {
		fw.mu.Lock()
		for _, timer := range fw.timers {
			timer.Stop()
		}
		fw.mu.Unlock()

		err = fw.watcher.Close()
	})
	return err
}

// Done is closed once the background goroutine has exited
func (fw *FileWatcher) Done() <-chan struct{} {
	return fw.done
}
