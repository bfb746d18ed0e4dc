package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the full config set whenever a YAML file in the watched
// directory changes. Reloads are delivered on Configs; the host applies
// them between frames, never mid-tick.
type Watcher struct {
	loader  *Loader
	watcher *fsnotify.Watcher
	Configs chan *GameConfig
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching dir for tuning changes.
func Watch(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		loader:  NewLoader(dir),
		watcher: fw,
		Configs: make(chan *GameConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		close(w.Configs)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isConfigFile(event.Name) {
				continue
			}
			// Editors fire bursts of events per save
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now

			cfg, err := w.loader.LoadAll()
			if err != nil {
				select {
				case w.Errors <- err:
				default:
				}
				continue
			}
			// Keep only the newest config if the host is behind
			select {
			case w.Configs <- cfg:
			default:
				select {
				case <-w.Configs:
				default:
				}
				w.Configs <- cfg
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
