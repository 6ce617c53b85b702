package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/qiniu/x/log"
)

// Watch reloads the config whenever the file at path changes and hands the
// result to onChange. It blocks until the watcher fails; callers run it in a
// goroutine. Reload errors are logged and the previous config stays in effect.
func Watch(path string, onChange func(Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// watch the directory: editors replace files on save, which drops
	// a watch registered on the file itself
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			eventAbs, err := filepath.Abs(event.Name)
			if err != nil || eventAbs != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := NewConfig(path)
			if err != nil {
				log.Errorf("failed to reload config %s: %v", path, err)
				continue
			}
			log.Infof("config reloaded from %s", path)
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("config watcher error: %v", err)
		}
	}
}
