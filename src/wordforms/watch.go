package wordforms

import (
	"context"
	"log"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handle publishes the current Dictionary to concurrent readers. Reloads
// build a complete new Dictionary and swap the pointer; readers never observe
// a partially built instance.
type Handle struct {
	path string
	dict atomic.Pointer[Dictionary]
}

// Open loads the word-forms file and returns a handle serving it.
func Open(path string) (*Handle, error) {
	d, err := Load(path)
	if err != nil {
		return nil, err
	}
	h := &Handle{path: path}
	h.dict.Store(d)
	return h, nil
}

// Dictionary returns the current immutable dictionary.
func (h *Handle) Dictionary() *Dictionary {
	return h.dict.Load()
}

// Reload rebuilds the dictionary from disk and swaps it in. On failure the
// previous dictionary stays visible.
func (h *Handle) Reload() error {
	d, err := Load(h.path)
	if err != nil {
		return err
	}
	h.dict.Store(d)
	return nil
}

// Watch reloads the dictionary whenever the word-forms file changes, until
// ctx is cancelled. Events are debounced so editors that write in several
// steps trigger a single reload. The parent directory is watched because
// many tools replace the file via rename.
func (h *Handle) Watch(ctx context.Context, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(h.path)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		var timer *time.Timer
		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(h.path) {
					continue
				}
				if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
					pending = timer.C
				} else {
					timer.Reset(debounce)
				}
			case <-pending:
				if err := h.Reload(); err != nil {
					log.Println("could not reload word forms, keeping previous dictionary,", err)
				} else {
					log.Printf("reloaded word forms from %s (%d base words)", h.path, h.Dictionary().Len())
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Println("word forms watcher error,", err)
			}
		}
	}()
	return nil
}
