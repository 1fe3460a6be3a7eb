package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const rosterDebounce = 100 * time.Millisecond

// RosterWatcher reloads a roster file whenever it changes on disk and
// delivers the parsed result on Updates. Parse failures go to Errors and
// the previous roster stays in effect.
type RosterWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan []CharacterTemplate
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewRosterWatcher watches the directory containing path, since editors
// often replace files instead of writing them in place.
func NewRosterWatcher(path string) (*RosterWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	rw := &RosterWatcher{
		watcher: w,
		path:    filepath.Clean(path),
		Updates: make(chan []CharacterTemplate, 4),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go rw.run()
	return rw, nil
}

func (rw *RosterWatcher) Close() error {
	var err error
	rw.once.Do(func() {
		close(rw.closeCh)
		err = rw.watcher.Close()
		<-rw.done
		close(rw.Updates)
		close(rw.Errors)
	})
	return err
}

// run reloads the roster once the file has been quiet for the debounce
// window, so a save that arrives as several events is parsed once.
func (rw *RosterWatcher) run() {
	defer close(rw.done)

	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case event, ok := <-rw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != rw.path {
				continue
			}
			debounce.Reset(rosterDebounce)
		case <-debounce.C:
			roster, err := LoadRosterFile(rw.path)
			if err != nil {
				rw.send(nil, err)
				continue
			}
			rw.send(roster, nil)
		case err, ok := <-rw.watcher.Errors:
			if !ok {
				return
			}
			rw.send(nil, err)
		case <-rw.closeCh:
			return
		}
	}
}

// send never blocks the watcher loop. When the game has not drained the
// channel yet the new result is dropped.
func (rw *RosterWatcher) send(roster []CharacterTemplate, err error) {
	if err != nil {
		select {
		case rw.Errors <- err:
		case <-rw.closeCh:
		default:
		}
		return
	}
	select {
	case rw.Updates <- roster:
	case <-rw.closeCh:
	default:
	}
}
