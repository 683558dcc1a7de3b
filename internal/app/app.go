package app

import (
	"context"
	"io"
	"net"
	"sync"

	"github.com/trsv-dev/mini-http-server/internal/config"
	"github.com/trsv-dev/mini-http-server/internal/console"
	"github.com/trsv-dev/mini-http-server/internal/logger"
	"github.com/trsv-dev/mini-http-server/internal/models"
	"github.com/trsv-dev/mini-http-server/internal/router"
	"github.com/trsv-dev/mini-http-server/internal/server"
	"github.com/trsv-dev/mini-http-server/internal/settings_storage"
	"github.com/trsv-dev/mini-http-server/internal/static_handler"
	"golang.org/x/sync/errgroup"
)

// App Владеет хранилищем настроек, слушателем и консолью оператора.
type App struct {
	cfg *config.Config
	in  io.Reader
	out io.Writer

	store *settings_storage.SettingsStore

	mu        sync.Mutex
	stopped   bool
	cancelRun context.CancelFunc
	listener  *server.Listener
}

// New Конструктор App. Если in равен nil, консоль не запускается.
func New(cfg *config.Config, in io.Reader, out io.Writer) *App {
	return &App{
		cfg:   cfg,
		in:    in,
		out:   out,
		store: settings_storage.NewSettingsStore(cfg.SettingsPath),
	}
}

// Run Загружает настройки, запускает сервер и блокируется до остановки.
// Ошибки загрузки настроек и занятия адреса возвращаются как фатальные,
// штатная остановка возвращает nil.
func (a *App) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.mu.Lock()
	a.cancelRun = cancel
	if a.stopped {
		cancel()
	}
	a.mu.Unlock()

	settings, err := a.store.Load()
	if err != nil {
		logger.Log.Error("Не удалось загрузить настройки", logger.String("err", err.Error()))
		return err
	}

	a.store.OnChange(warnOnAddressChange)

	if runCtx.Err() != nil {
		logger.Log.Info("Остановка запрошена до запуска сервера")
		return nil
	}

	handler := router.Router(static_handler.NewStaticHandler(a.store))

	listener := server.NewListener(handler, server.Options{
		ReadTimeout:     a.cfg.ReadTimeout,
		WriteTimeout:    a.cfg.WriteTimeout,
		ShutdownTimeout: a.cfg.ShutdownTimeout,
	})

	if err = listener.Start(settings); err != nil {
		logger.Log.Error("Не удалось запустить сервер", logger.String("err", err.Error()))
		return err
	}

	a.mu.Lock()
	a.listener = listener
	a.mu.Unlock()

	g, gctx := errgroup.WithContext(runCtx)

	// супервизор: ждёт остановки и гасит слушатель
	g.Go(func() error {
		select {
		case <-gctx.Done():
		case <-listener.Done():
			logger.Log.Warn("Цикл приёма соединений завершился без команды остановки")
		}

		cancel()

		// runCtx уже отменён, поэтому Shutdown получает свой контекст
		return listener.Stop(context.Background())
	})

	if a.in != nil {
		cons := console.NewConsole(a.in, a.out, a.store, a)
		g.Go(func() error {
			return cons.Run(gctx)
		})
	}

	if a.cfg.WatchSettings {
		watcher := settings_storage.NewWatcher(a.store.Path(), a.store, settings_storage.DefaultDebounce)
		g.Go(func() error {
			if err := watcher.Run(gctx); err != nil {
				logger.Log.Warn("Слежение за файлом настроек остановлено", logger.String("err", err.Error()))
			}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		logger.Log.Warn("Сервер остановлен с ошибкой", logger.String("err", err.Error()))
	}

	logger.Log.Info("Приложение завершено")

	return nil
}

// Stop Запрашивает остановку. Безопасен до, во время и после Run, повторные вызовы ничего не делают.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return
	}

	a.stopped = true
	if a.cancelRun != nil {
		a.cancelRun()
	}
}

// Addr Адрес запущенного сервера или nil.
func (a *App) Addr() net.Addr {
	a.mu.Lock()
	listener := a.listener
	a.mu.Unlock()

	if listener == nil {
		return nil
	}

	return listener.Addr()
}

// Слушатель не переоткрывается при перезагрузке настроек.
func warnOnAddressChange(prev, next models.Settings) {
	if prev.Address() == next.Address() {
		return
	}

	logger.Log.Warn("Адрес в настройках изменился, сервер продолжает слушать прежний адрес до перезапуска",
		logger.String("current", prev.Address()),
		logger.String("configured", next.Address()))
}
