package core

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads and applies a config file whenever it changes on disk,
// then fires EVENT_CODE_CONFIG_RELOADED with the new Config.
type ConfigWatcher struct {
	path string

	mutex   sync.RWMutex
	current Config

	fsnotify *fsnotify.Watcher
	done     chan struct{}
	wg       sync.WaitGroup
	isClosed bool
}

// WatchConfig loads path, applies it and starts watching it.
func WatchConfig(path string) (*ConfigWatcher, error) {
	path = filepath.Clean(path)
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(); err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory rather than the file: editors usually replace files on save.
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		path:     path,
		current:  cfg,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}
	cw.wg.Add(1)
	go cw.start()
	return cw, nil
}

// Current returns the last successfully loaded config.
func (cw *ConfigWatcher) Current() Config {
	cw.mutex.RLock()
	defer cw.mutex.RUnlock()
	return cw.current
}

func (cw *ConfigWatcher) Close() error {
	cw.mutex.Lock()
	if cw.isClosed {
		cw.mutex.Unlock()
		return errors.New("config watcher already closed")
	}
	cw.isClosed = true
	cw.mutex.Unlock()

	close(cw.done)
	cw.wg.Wait()
	return nil
}

func (cw *ConfigWatcher) start() {
	defer cw.wg.Done()
	for {
		select {
		case e, ok := <-cw.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != cw.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				cw.reload()
			}

		case e, ok := <-cw.fsnotify.Errors:
			if !ok {
				return
			}
			LogError("config watcher: %s", e)

		case <-cw.done:
			cw.fsnotify.Close()
			return
		}
	}
}

func (cw *ConfigWatcher) reload() {
	cfg, err := LoadConfig(cw.path)
	if err != nil {
		// Half written files are common while saving; keep the previous config.
		LogWarn("config reload skipped: %s", err)
		return
	}
	if err := cfg.Apply(); err != nil {
		LogWarn("config apply failed: %s", err)
		return
	}

	cw.mutex.Lock()
	cw.current = cfg
	cw.mutex.Unlock()

	LogInfo("config reloaded from %s", cw.path)
	EventFire(EventContext{
		Type:   EVENT_CODE_CONFIG_RELOADED,
		Sender: cw,
		Data:   cfg,
	})
}
