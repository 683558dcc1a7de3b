package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/trsv-dev/mini-http-server/internal/middleware"
)

// Router Роутер: все пути и методы уходят в обработчик статики.
func Router(static http.Handler) chi.Router {
	router := chi.NewRouter()

	// middleware логгера всех запросов
	router.Use(middleware.LogMiddleware)
	// паника в обработчике превращается в ответ 500
	router.Use(middleware.Recoverer)

	router.Handle("/", static)
	router.Handle("/*", static)
	// методы вне стандартного набора chi тоже уходят в обработчик статики
	router.MethodNotAllowed(static.ServeHTTP)

	return router
}
