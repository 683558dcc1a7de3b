package logger

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetLogger Сбрасывает синглтон логгера между тестами.
func resetLogger(t *testing.T) {
	t.Helper()

	Log = nil
	once = sync.Once{}
}

// newBufferedAdapter Создаёт адаптер, пишущий в буфер с заданным уровнем.
func newBufferedAdapter(level slog.Level) (*SlogAdapter, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	slogger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))

	return &SlogAdapter{slog: slogger}, buf
}

// TestSlogAdapterWritesFields Проверяет, что сообщения и поля попадают в вывод на всех уровнях.
func TestSlogAdapterWritesFields(t *testing.T) {
	adapter, buf := newBufferedAdapter(slog.LevelDebug)

	adapter.Debug("debug message", String("path", "/index.html"))
	adapter.Info("info message", Int("status", 200))
	adapter.Warn("warn message", Int64("size", 1024))
	adapter.Error("error message", String("err", "permission denied"))

	output := buf.String()

	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "path=/index.html")
	assert.Contains(t, output, "status=200")
	assert.Contains(t, output, "size=1024")
	assert.Contains(t, output, `err="permission denied"`)
}

// TestSlogAdapterLogLevels Проверяет фильтрацию по уровням логирования.
func TestSlogAdapterLogLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     slog.Level
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{name: "уровень Debug", level: slog.LevelDebug, wantDebug: true, wantInfo: true, wantWarn: true},
		{name: "уровень Info", level: slog.LevelInfo, wantInfo: true, wantWarn: true},
		{name: "уровень Warn", level: slog.LevelWarn, wantWarn: true},
		{name: "уровень Error", level: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, buf := newBufferedAdapter(tt.level)

			adapter.Debug("debug message")
			adapter.Info("info message")
			adapter.Warn("warn message")
			adapter.Error("error message")

			output := buf.String()

			assert.Equal(t, tt.wantDebug, strings.Contains(output, "debug message"))
			assert.Equal(t, tt.wantInfo, strings.Contains(output, "info message"))
			assert.Equal(t, tt.wantWarn, strings.Contains(output, "warn message"))
			// Error пишется на любом уровне
			assert.Contains(t, output, "error message")
		})
	}
}

// TestParseLevel Проверяет разбор уровня логирования без учёта регистра.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"Info", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"unknown_level", slog.LevelDebug},
		{"", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

// TestInitLoggerStdout Проверяет инициализацию логгера с выводом в stdout.
func TestInitLoggerStdout(t *testing.T) {
	resetLogger(t)

	InitLogger("info", "stdout")

	require.NotNil(t, Log)
	adapter, ok := Log.(*SlogAdapter)
	require.True(t, ok)
	// для stdout закрывать нечего
	assert.Nil(t, adapter.output)
	assert.NoError(t, Close())
}

// TestInitLoggerFile Проверяет запись логов в файл через lumberjack.
func TestInitLoggerFile(t *testing.T) {
	resetLogger(t)

	logPath := filepath.Join(t.TempDir(), "server.log")

	InitLogger("debug", logPath)
	require.NotNil(t, Log)

	Log.Info("Сервер запущен", String("address", "127.0.0.1:8080"))
	require.NoError(t, Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "address=127.0.0.1:8080")
}

// TestInitLoggerSingleton Проверяет что InitLogger работает как синглтон.
func TestInitLoggerSingleton(t *testing.T) {
	resetLogger(t)

	InitLogger("debug", "stdout")
	firstLog := Log

	InitLogger("error", "stderr")
	secondLog := Log

	assert.Same(t, firstLog, secondLog)
}

// TestSlogAdapterCloseNil Проверяет закрытие адаптера без файлового вывода.
func TestSlogAdapterCloseNil(t *testing.T) {
	adapter := &SlogAdapter{slog: slog.New(slog.NewTextHandler(io.Discard, nil))}

	assert.NoError(t, adapter.Close())
}

// TestLoggerConcurrency Проверяет конкурентное логирование.
func TestLoggerConcurrency(t *testing.T) {
	adapter, buf := newBufferedAdapter(slog.LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			adapter.Info("concurrent log", Int("id", id))
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 10, strings.Count(buf.String(), "concurrent log"))
}

// TestConvertFields Проверяет преобразование Fields в any[].
func TestConvertFields(t *testing.T) {
	result := convertFields([]Field{String("key1", "value1"), Int("key2", 123)})

	assert.Equal(t, []any{"key1", "value1", "key2", "123"}, result)
	assert.Empty(t, convertFields(nil))
}
