package config

import (
	"log"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Store holds the current tuning document and allows it to be swapped
// while the game runs. Readers pick up a new table at the next level load.
type Store struct {
	v atomic.Pointer[Config]
}

// NewStore creates a store seeded with cfg.
func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.v.Store(cfg)
	return s
}

// Get returns the current config.
func (s *Store) Get() *Config {
	return s.v.Load()
}

// Set replaces the current config.
func (s *Store) Set(cfg *Config) {
	s.v.Store(cfg)
}

// Watcher reloads a tuning file into a Store whenever it changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching path and updates store on every successful reload.
// A reload failure keeps the previous table and logs the error.
func Watch(path string, store *Store) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		closeCh: make(chan struct{}),
	}
	go w.run(path, store)
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run(path string, store *Store) {
	base := filepath.Base(path)
	dir := filepath.Dir(path)
	var last time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			// Editors fire bursts of events per save.
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now

			cfg, err := NewLoader(dir).Load(base)
			if err != nil {
				log.Printf("config reload failed, keeping previous table: %v", err)
				continue
			}
			store.Set(cfg)
			log.Printf("config reloaded: %s", path)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config watcher error: %v", err)
		case <-w.closeCh:
			return
		}
	}
}
