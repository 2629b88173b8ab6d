package api

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// WatchDocument следит за файлом документа и перечитывает его при изменении.
// Смотрим за директорией, а не за файлом: редакторы и деплой обычно
// подменяют файл через rename, и watch на сам файл отваливается.
func WatchDocument(storage *Storage, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(storage.DataFile())
	base := filepath.Base(storage.DataFile())
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return err
	}

	log := logrus.WithField("component", "watcher")

	go func() {
		defer watcher.Close()

		// дебаунс: редакторы пишут файл несколькими событиями подряд
		var timer *time.Timer
		reload := func() {
			count, errs, err := storage.Reload()
			switch {
			case err != nil:
				log.Warnf("reload failed: %v", err)
			case len(errs) > 0:
				log.Warnf("reload rejected: %d validation errors, keeping previous document", len(errs))
			default:
				log.Infof("document reloaded: %d schemes", count)
			}
		}

		for {
			select {
			case <-stop:
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(200*time.Millisecond, reload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warnf("watch error: %v", err)
			}
		}
	}()

	return nil
}
