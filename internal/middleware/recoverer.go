package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/trsv-dev/mini-http-server/internal/logger"
	"github.com/trsv-dev/mini-http-server/internal/static_handler"
)

// Recoverer Middleware, превращающий панику в обработчике в ответ 500.
// Паника одного запроса не затрагивает остальные соединения.
func Recoverer(h http.Handler) http.Handler {
	f := func(w http.ResponseWriter, r *http.Request) {
		lw, ok := w.(*LoggingResponseWriter)
		if !ok {
			lw = &LoggingResponseWriter{ResponseWriter: w, responseData: &responseData{}}
		}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			// ErrAbortHandler штатно обрывает соединение в net/http
			if err, isErr := rec.(error); isErr && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.Log.Error("Паника при обработке запроса",
				logger.String("remote_addr", r.RemoteAddr),
				logger.String("uri", r.RequestURI),
				logger.String("panic", fmt.Sprintf("%v", rec)),
				logger.String("stack", string(debug.Stack())))

			// заголовки уже ушли клиенту, корректный ответ отправить нельзя
			if lw.WroteHeader() {
				panic(http.ErrAbortHandler)
			}

			static_handler.WriteResponse(lw, static_handler.InternalError())
		}()

		h.ServeHTTP(lw, r)
	}

	return http.HandlerFunc(f)
}
