// Package contenttype сопоставляет расширению файла MIME-тип ответа.
package contenttype

import "strings"

// Default Тип для неизвестных расширений и файлов без расширения.
const Default = "application/octet-stream"

// HTML Тип для html-страниц, включая страницы ошибок.
const HTML = "text/html; charset=utf-8"

var types = map[string]string{
	"html":  HTML,
	"htm":   HTML,
	"css":   "text/css",
	"js":    "application/javascript",
	"json":  "application/json",
	"png":   "image/png",
	"jpg":   "image/jpeg",
	"jpeg":  "image/jpeg",
	"gif":   "image/gif",
	"svg":   "image/svg+xml",
	"ico":   "image/x-icon",
	"woff":  "font/woff",
	"woff2": "font/woff2",
	"ttf":   "font/ttf",
	"txt":   "text/plain; charset=utf-8",
}

// Resolve Возвращает MIME-тип по расширению (".css" или "css", без учёта регистра).
func Resolve(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))

	if mimeType, ok := types[ext]; ok {
		return mimeType
	}

	return Default
}
