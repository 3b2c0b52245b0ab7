package main

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// configWatcher reloads thresholds and the service list when the config
// file changes, so alerting can be tuned without restarting the monitor.
// The tick interval is fixed at start; changing it needs a restart.
type configWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	apply   func(*Config)
	logger  *log.Logger
	done    chan struct{}
}

func newConfigWatcher(path string, logger *log.Logger, apply func(*Config)) (*configWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors and provisioning tools replace the file
	// on save, which would drop a watch held on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	cw := &configWatcher{
		watcher: w,
		path:    path,
		apply:   apply,
		logger:  logger,
		done:    make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

func (cw *configWatcher) run() {
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(cw.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cw.reload()
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Printf("WARNING: config watch: %v", err)
		case <-cw.done:
			return
		}
	}
}

func (cw *configWatcher) reload() {
	cfg, err := loadConfig(cw.path)
	if err != nil {
		// Keep running on the previous configuration.
		cw.logger.Printf("WARNING: config reload failed: %v", err)
		return
	}
	cw.apply(cfg)
	cw.logger.Printf("Config reloaded from %s", cw.path)
}

func (cw *configWatcher) Stop() {
	close(cw.done)
	cw.watcher.Close()
}
