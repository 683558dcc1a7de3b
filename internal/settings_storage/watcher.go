package settings_storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/trsv-dev/mini-http-server/internal/logger"
)

// DefaultDebounce Пауза после последнего события файловой системы перед перезагрузкой.
const DefaultDebounce = 200 * time.Millisecond

// Reloader Источник настроек, умеющий перечитывать себя.
type Reloader interface {
	Reload() error
}

// Watcher Следит за файлом настроек и перезагружает их при изменении.
type Watcher struct {
	path     string
	reloader Reloader
	debounce time.Duration
}

// NewWatcher Конструктор Watcher.
func NewWatcher(path string, reloader Reloader, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		path:     path,
		reloader: reloader,
		debounce: debounce,
	}
}

// Run Следит за каталогом файла настроек до отмены контекста.
// Наблюдение ведётся за каталогом: редакторы сохраняют файл через переименование.
func (w *Watcher) Run(ctx context.Context) error {
	absPath, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("не удалось получить абсолютный путь к настройкам: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("не удалось создать наблюдатель за файлом настроек: %w", err)
	}
	defer fsWatcher.Close()

	if err = fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("не удалось начать наблюдение за %s: %w", filepath.Dir(absPath), err)
	}

	logger.Log.Info("Наблюдение за файлом настроек запущено", logger.String("path", absPath))

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("Наблюдение за файлом настроек остановлено по контексту")
			return nil

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != absPath || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}

			logger.Log.Debug("Файл настроек изменён", logger.String("op", event.Op.String()))

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case watchErr, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}

			logger.Log.Warn("Ошибка наблюдения за файлом настроек", logger.String("err", watchErr.Error()))

		case <-timerC:
			timerC = nil

			// ошибка уже залогирована хранилищем, прежние настройки остаются в силе
			_ = w.reloader.Reload()
		}
	}
}
