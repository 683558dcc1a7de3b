package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/trsv-dev/mini-http-server/internal/errs"
	"github.com/trsv-dev/mini-http-server/internal/logger"
	"github.com/trsv-dev/mini-http-server/internal/models"
)

// State Состояние слушателя.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateListening
	StateStopping
)

// String Стрингер для State.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateStarting:
		return "Starting"
	case StateListening:
		return "Listening"
	case StateStopping:
		return "Stopping"
	default:
		return "Unknown"
	}
}

// Options Таймауты HTTP-сервера.
type Options struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultShutdownTimeout Сколько ждать завершения запросов при остановке, если не задано.
const DefaultShutdownTimeout = 5 * time.Second

// Listener Принимает соединения и обрабатывает каждое в отдельной горутине.
type Listener struct {
	handler http.Handler
	opts    Options

	mu         sync.Mutex
	state      State
	httpServer *http.Server
	listener   net.Listener
	done       chan struct{}
}

// NewListener Конструктор Listener.
func NewListener(handler http.Handler, opts Options) *Listener {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = DefaultShutdownTimeout
	}

	return &Listener{
		handler: handler,
		opts:    opts,
		state:   StateStopped,
	}
}

// Start Занимает адрес domain:port и запускает цикл приёма соединений в горутине.
// Ошибка занятия адреса фатальна для вызывающей стороны.
func (l *Listener) Start(settings models.Settings) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateStopped {
		return errs.ErrAlreadyStarted
	}

	l.state = StateStarting
	address := settings.Address()

	ln, err := net.Listen("tcp", address)
	if err != nil {
		l.state = StateStopped
		return errs.NewErrListenerBind(address, err)
	}

	srv := &http.Server{
		Handler:      l.handler,
		ReadTimeout:  l.opts.ReadTimeout,
		WriteTimeout: l.opts.WriteTimeout,
	}

	done := make(chan struct{})

	l.httpServer = srv
	l.listener = ln
	l.done = done
	l.state = StateListening

	go l.acceptLoop(srv, &retryListener{Listener: ln}, done)

	logger.Log.Info("Сервер запущен", logger.String("address", ln.Addr().String()))

	return nil
}

// Цикл приёма соединений: http.Server запускает горутину на каждое соединение.
func (l *Listener) acceptLoop(srv *http.Server, ln net.Listener, done chan struct{}) {
	defer close(done)

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, net.ErrClosed) {
		logger.Log.Error("Цикл приёма соединений завершился с ошибкой", logger.String("err", err.Error()))
	}

	logger.Log.Debug("Цикл приёма соединений завершён")
}

// Stop Останавливает приём новых соединений и ждёт текущие запросы не дольше ShutdownTimeout.
// Повторный вызов и вызов на остановленном слушателе ничего не делают.
func (l *Listener) Stop(ctx context.Context) error {
	l.mu.Lock()
	if l.state != StateListening {
		l.mu.Unlock()
		return nil
	}

	l.state = StateStopping
	srv, done := l.httpServer, l.done
	l.mu.Unlock()

	shutdownCtx, cancel := context.WithTimeout(ctx, l.opts.ShutdownTimeout)
	defer cancel()

	var stopErr error

	// Shutdown сразу закрывает слушающий сокет, затем ждёт активные соединения
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Warn("Не все запросы завершились за отведённое время, соединения закрываются принудительно",
			logger.String("err", err.Error()))
		stopErr = srv.Close()
	}

	<-done

	l.mu.Lock()
	l.state = StateStopped
	l.httpServer = nil
	l.listener = nil
	l.mu.Unlock()

	logger.Log.Info("Сервер остановлен")

	return stopErr
}

// State Текущее состояние слушателя.
func (l *Listener) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}

// Addr Адрес, на котором слушает сервер, или nil, если он не запущен.
func (l *Listener) Addr() net.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listener == nil {
		return nil
	}

	return l.listener.Addr()
}

// Done Канал, закрывающийся по завершении цикла приёма соединений.
// До первого Start возвращает nil.
func (l *Listener) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.done
}
