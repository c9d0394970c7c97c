package store

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates cached tables when their backing files change on
// disk. One Watcher serves every store of a backend.
type Watcher struct {
	fsw    *fsnotify.Watcher
	logger *slog.Logger

	mu   sync.Mutex
	dirs map[string]bool
	subs map[string][]func()

	done chan struct{}
}

// NewWatcher starts a watcher goroutine. Call Close to stop it.
func NewWatcher(logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:    fsw,
		logger: orDefault(logger),
		dirs:   make(map[string]bool),
		subs:   make(map[string][]func()),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Watch calls onChange whenever path is written, created, removed or
// renamed over. The parent directory is watched because atomic rewrites
// replace the file rather than modify it.
func (w *Watcher) Watch(path string, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirs[dir] {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.subs[abs] = append(w.subs[abs], onChange)
	return nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&relevant == 0 {
				continue
			}
			w.notify(filepath.Clean(ev.Name))
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) notify(path string) {
	w.mu.Lock()
	subs := append([]func(){}, w.subs[path]...)
	w.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
