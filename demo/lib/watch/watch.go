package watch

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports writes to a set of files. It only reports, the owner of the
// GL context decides when to act, since GL calls must stay on the render
// thread.
type Watcher struct {
	log     *zap.Logger
	watcher *fsnotify.Watcher
	changed chan string

	mu    sync.Mutex
	files map[string]struct{}

	done chan struct{}
	wg   sync.WaitGroup
}

func New(log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		log:     log,
		watcher: fw,
		changed: make(chan string, 16),
		files:   make(map[string]struct{}),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Add starts watching path. Its directory is watched so editors that replace
// the file on save are still seen.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	_, known := w.files[abs]
	w.files[abs] = struct{}{}
	w.mu.Unlock()
	if known {
		return nil
	}
	return w.watcher.Add(filepath.Dir(abs))
}

// Changed delivers the absolute path of every watched file that was written.
// Bursts are coalesced when the reader falls behind.
func (w *Watcher) Changed() <-chan string {
	return w.changed
}

// Drain returns the distinct paths changed since the last call without
// blocking.
func (w *Watcher) Drain() []string {
	seen := make(map[string]struct{})
	var paths []string
	for {
		select {
		case p := <-w.changed:
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				paths = append(paths, p)
			}
		default:
			return paths
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			w.mu.Lock()
			_, watched := w.files[name]
			w.mu.Unlock()
			if !watched {
				continue
			}
			select {
			case w.changed <- name:
				w.log.Debug("file changed", zap.String("path", name))
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}
