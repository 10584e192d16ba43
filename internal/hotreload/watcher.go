// Package hotreload reports edits to shader files on disk.
//
// The watcher goroutine only forwards file names. Rebuilding programs is
// left to whoever drains Pending, which must be the thread owning the GL
// context.
package hotreload

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

const queueSize = 32

// Watcher watches one directory for changed files.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// New starts watching dir.
func New(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("could not watch %s: %w", dir, err)
	}
	w := &Watcher{
		watcher: fw,
		changes: make(chan string, queueSize),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			// editors save either in place or by renaming a temp file over
			// the original
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.changes <- filepath.Base(event.Name):
			default:
				// queue full; the frame loop will catch up on the next save
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("hotreload: %v", err)
		}
	}
}

// Changes delivers the base name of each changed file.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Pending drains queued changes without blocking. Each name appears once,
// in order of first change.
func (w *Watcher) Pending() []string {
	var names []string
	seen := make(map[string]bool)
	for {
		select {
		case name := <-w.changes:
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		default:
			return names
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}
