package static_handler

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/trsv-dev/mini-http-server/internal/contenttype"
	"github.com/trsv-dev/mini-http-server/internal/logger"
	"github.com/trsv-dev/mini-http-server/internal/models"
)

// readFile Чтение файла, подменяется в тестах.
var readFile = os.ReadFile

// DefaultDocument Файл, отдаваемый на запрос корня каталога.
const DefaultDocument = "index.html"

const (
	BodyForbidden     = "<h1>403 Forbidden</h1>"
	BodyNotFound      = "<h1>404 Not Found</h1>"
	BodyInternalError = "<h1>500 Internal Server Error</h1>"
)

// Response Ответ на запрос файла. Формируется один раз и один раз пишется в соединение.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// SettingsSnapshotter Источник актуальных настроек для каждого запроса.
type SettingsSnapshotter interface {
	Snapshot() models.Settings
}

// StaticHandler Обработчик, отдающий файлы из publicDirectoryPath текущих настроек.
type StaticHandler struct {
	settings SettingsSnapshotter
}

// NewStaticHandler Конструктор StaticHandler.
func NewStaticHandler(settings SettingsSnapshotter) *StaticHandler {
	return &StaticHandler{
		settings: settings,
	}
}

// ServeHTTP Берёт свежий снимок настроек, формирует ответ и пишет его в соединение.
// Метод запроса не проверяется: любой запрос считается запросом файла.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := Handle(r.URL.Path, h.settings.Snapshot())

	WriteResponse(w, resp)
}

// WriteResponse Пишет ответ целиком: заголовки с Content-Length, затем тело.
func WriteResponse(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", resp.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.Body)))
	w.WriteHeader(resp.StatusCode)

	if _, err := w.Write(resp.Body); err != nil {
		logger.Log.Debug("Не удалось записать тело ответа", logger.String("err", err.Error()))
	}
}

// Handle Сопоставляет путь запроса файлу внутри publicDirectoryPath и формирует ответ.
// Пути, выходящие за пределы каталога, отклоняются без обращения к файловой системе.
func Handle(requestPath string, settings models.Settings) Response {
	relPath := strings.TrimPrefix(requestPath, "/")
	if relPath == "" || strings.HasSuffix(relPath, "/") {
		relPath += DefaultDocument
	}

	root, err := filepath.Abs(settings.PublicDirectoryPath)
	if err != nil {
		logger.Log.Error("Некорректный путь к публичному каталогу",
			logger.String("public_dir", settings.PublicDirectoryPath),
			logger.String("err", err.Error()))
		return errorResponse(http.StatusInternalServerError)
	}

	fullPath, ok := resolveInside(root, relPath)
	if !ok {
		logger.Log.Warn("Попытка выхода за пределы публичного каталога",
			logger.String("path", requestPath),
			logger.String("public_dir", root))
		return errorResponse(http.StatusForbidden)
	}

	data, err := readFile(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			logger.Log.Info("Файл не найден", logger.String("path", requestPath))
			return errorResponse(http.StatusNotFound)
		}

		logger.Log.Error("Ошибка при чтении файла",
			logger.String("path", fullPath),
			logger.String("err", err.Error()))
		return errorResponse(http.StatusInternalServerError)
	}

	return Response{
		StatusCode:  http.StatusOK,
		ContentType: contenttype.Resolve(filepath.Ext(fullPath)),
		Body:        data,
	}
}

// resolveInside Склеивает относительный путь с корнем и проверяет, что результат остаётся внутри корня.
func resolveInside(root, relPath string) (string, bool) {
	if strings.ContainsRune(relPath, 0) {
		return "", false
	}

	fullPath := filepath.Join(root, filepath.FromSlash(relPath))

	rel, err := filepath.Rel(root, fullPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	return fullPath, true
}

func errorResponse(status int) Response {
	var body string

	switch status {
	case http.StatusForbidden:
		body = BodyForbidden
	case http.StatusNotFound:
		body = BodyNotFound
	default:
		status = http.StatusInternalServerError
		body = BodyInternalError
	}

	return Response{
		StatusCode:  status,
		ContentType: contenttype.HTML,
		Body:        []byte(body),
	}
}

// InternalError Ответ 500 для случаев, когда обработка запроса прервалась.
func InternalError() Response {
	return errorResponse(http.StatusInternalServerError)
}
