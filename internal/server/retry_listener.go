package server

import (
	"errors"
	"net"
	"time"

	"github.com/trsv-dev/mini-http-server/internal/logger"
)

const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// retryListener Не даёт временным ошибкам Accept завершить цикл приёма соединений.
// Выход из Accept с ошибкой происходит только после закрытия слушателя.
type retryListener struct {
	net.Listener
}

func (rl *retryListener) Accept() (net.Conn, error) {
	var delay time.Duration

	for {
		conn, err := rl.Listener.Accept()
		if err == nil {
			return conn, nil
		}

		if errors.Is(err, net.ErrClosed) {
			return nil, err
		}

		if delay == 0 {
			delay = minAcceptDelay
		} else {
			delay = min(delay*2, maxAcceptDelay)
		}

		logger.Log.Warn("Ошибка при приёме соединения",
			logger.String("err", err.Error()),
			logger.Int64("retry_in_ms", delay.Milliseconds()))

		time.Sleep(delay)
	}
}
