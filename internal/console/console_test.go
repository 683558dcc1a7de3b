package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	consoleMocks "github.com/trsv-dev/mini-http-server/internal/console/mocks"
	"github.com/trsv-dev/mini-http-server/internal/logger"
	"github.com/trsv-dev/mini-http-server/internal/models"
)

func init() {
	logger.InitLogger("error", "stdout")
}

// runConsole Запускает консоль на заданном вводе и ждёт её завершения.
func runConsole(t *testing.T, in io.Reader, reloader SettingsReloader, stopper Stopper) string {
	t.Helper()

	out := &bytes.Buffer{}
	c := NewConsole(in, out, reloader, stopper)

	errCh := make(chan error, 1)
	go func() {
		errCh <- c.Run(context.Background())
	}()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("консоль не завершилась")
	}

	return out.String()
}

// TestConsoleStop Проверяет команду /stop в разных написаниях.
func TestConsoleStop(t *testing.T) {
	inputs := []string{
		"/stop\n",
		"  /STOP  \n",
		"/Stop\r\n",
		"/stop",
		"\n\n/stop\n/reload\n",
	}

	for _, input := range inputs {
		t.Run(strings.TrimSpace(input), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReloader := consoleMocks.NewMockSettingsReloader(ctrl)
			mockStopper := consoleMocks.NewMockStopper(ctrl)

			// команды после /stop не выполняются: Reload не ожидается
			mockStopper.EXPECT().Stop().Times(1)

			out := runConsole(t, strings.NewReader(input), mockReloader, mockStopper)

			assert.Contains(t, out, "Остановка сервера...")
		})
	}
}

// TestConsoleReload Проверяет вывод настроек до и после перезагрузки.
func TestConsoleReload(t *testing.T) {
	before := models.Settings{Domain: "localhost", Port: 8080, PublicDirectoryPath: "public"}
	after := models.Settings{Domain: "0.0.0.0", Port: 9090, PublicDirectoryPath: "www"}

	tests := []struct {
		name       string
		reloadErr  error
		snapshots  []models.Settings
		wantOutput []string
	}{
		{
			name:      "успешная перезагрузка",
			snapshots: []models.Settings{before, after},
			wantOutput: []string{
				"Текущие настройки: " + before.String(),
				"Настройки перезагружены",
				"Настройки после перезагрузки: " + after.String(),
			},
		},
		{
			name:      "ошибка перезагрузки",
			reloadErr: errors.New("unexpected end of JSON input"),
			snapshots: []models.Settings{before, before},
			wantOutput: []string{
				"Текущие настройки: " + before.String(),
				"Не удалось перезагрузить настройки, действуют прежние: unexpected end of JSON input",
				"Настройки после перезагрузки: " + before.String(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReloader := consoleMocks.NewMockSettingsReloader(ctrl)
			mockStopper := consoleMocks.NewMockStopper(ctrl)

			gomock.InOrder(
				mockReloader.EXPECT().Snapshot().Return(tt.snapshots[0]),
				mockReloader.EXPECT().Reload().Return(tt.reloadErr),
				mockReloader.EXPECT().Snapshot().Return(tt.snapshots[1]),
			)

			out := runConsole(t, strings.NewReader("/RELOAD\n"), mockReloader, mockStopper)

			for _, want := range tt.wantOutput {
				assert.Contains(t, out, want)
			}
		})
	}
}

// TestConsoleUnknownCommand Проверяет справку на неизвестные команды и игнорирование пустых строк.
func TestConsoleUnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReloader := consoleMocks.NewMockSettingsReloader(ctrl)
	mockStopper := consoleMocks.NewMockStopper(ctrl)

	out := runConsole(t, strings.NewReader("\n   \nhello\n/restart\n"), mockReloader, mockStopper)

	assert.Equal(t, 2, strings.Count(out, "Неизвестная команда"))
	assert.Contains(t, out, CommandStop)
	assert.Contains(t, out, CommandReload)
}

// TestConsoleEOF Проверяет, что конец ввода завершает консоль без остановки сервера.
func TestConsoleEOF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStopper := consoleMocks.NewMockStopper(ctrl)
	mockStopper.EXPECT().Stop().Times(0)

	out := runConsole(t, strings.NewReader(""), consoleMocks.NewMockSettingsReloader(ctrl), mockStopper)

	assert.Empty(t, out)
}

// TestConsoleContextCancel Проверяет, что отмена контекста завершает консоль при заблокированном вводе.
func TestConsoleContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pr, pw := io.Pipe()
	defer pw.Close()

	c := NewConsole(pr, io.Discard, consoleMocks.NewMockSettingsReloader(ctrl), consoleMocks.NewMockStopper(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- c.Run(ctx)
	}()

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("консоль не остановилась по контексту")
	}
}

// flakyReader Возвращает ошибку чтения один раз, затем отдаёт данные.
type flakyReader struct {
	failed bool
	data   io.Reader
}

func (f *flakyReader) Read(p []byte) (int, error) {
	if !f.failed {
		f.failed = true
		return 0, errors.New("input/output error")
	}

	return f.data.Read(p)
}

// TestConsoleReadErrorContinues Проверяет, что ошибка чтения не останавливает консоль.
func TestConsoleReadErrorContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStopper := consoleMocks.NewMockStopper(ctrl)
	mockStopper.EXPECT().Stop().Times(1)

	in := &flakyReader{data: strings.NewReader("/stop\n")}

	out := runConsole(t, in, consoleMocks.NewMockSettingsReloader(ctrl), mockStopper)

	assert.Contains(t, out, "Остановка сервера...")
}
