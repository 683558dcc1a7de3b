package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/trsv-dev/mini-http-server/internal/logger"
)

// RequestIDHeader Заголовок с идентификатором запроса.
const RequestIDHeader = "X-Request-Id"

// Структура для хранения данных ответа.
type responseData struct {
	status int
	size   int
}

// LoggingResponseWriter Структура, которой можно подменить оригинальный http.ResponseWriter
// для получения ответа и записи ответа в лог.
type LoggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
	wroteHeader  bool
}

func (l *LoggingResponseWriter) Write(b []byte) (int, error) {
	if !l.wroteHeader {
		l.WriteHeader(http.StatusOK)
	}

	// записываем ответ, используя оригинальный http.ResponseWriter
	size, err := l.ResponseWriter.Write(b)
	// захватываем размер
	l.responseData.size += size

	return size, err
}

func (l *LoggingResponseWriter) WriteHeader(statusCode int) {
	l.ResponseWriter.WriteHeader(statusCode)

	if !l.wroteHeader {
		l.responseData.status = statusCode
		l.wroteHeader = true
	}
}

// Flush Пробрасывает Flush, если оригинальный writer его поддерживает.
func (l *LoggingResponseWriter) Flush() {
	if f, ok := l.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// WroteHeader Были ли уже отправлены заголовки ответа.
func (l *LoggingResponseWriter) WroteHeader() bool {
	return l.wroteHeader
}

// LogMiddleware Middleware для логирования всех запросов.
func LogMiddleware(h http.Handler) http.Handler {
	f := func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		data := responseData{
			status: 0,
			size:   0,
		}

		lw := LoggingResponseWriter{
			ResponseWriter: w,
			responseData:   &data,
		}

		start := time.Now()
		h.ServeHTTP(&lw, r)
		duration := time.Since(start)

		logger.Log.Info("Запрос обработан",
			logger.String("request_id", requestID),
			logger.String("remote_addr", r.RemoteAddr),
			logger.String("method", r.Method),
			logger.String("uri", r.RequestURI),
			logger.Int("status", data.status),
			logger.String("duration", duration.String()),
			logger.Int("size", data.size),
		)
	}

	return http.HandlerFunc(f)
}
