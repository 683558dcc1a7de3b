// Package console реализует консоль оператора: построчные команды управления сервером.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/trsv-dev/mini-http-server/internal/logger"
)

const (
	CommandStop   = "/stop"
	CommandReload = "/reload"
)

// readErrorDelay Пауза после ошибки чтения ввода, чтобы не крутить цикл вхолостую.
const readErrorDelay = 100 * time.Millisecond

const helpText = `Неизвестная команда. Доступные команды:
  /stop    остановить сервер
  /reload  перечитать файл настроек`

// Console Консоль оператора.
type Console struct {
	in       io.Reader
	out      io.Writer
	settings SettingsReloader
	stopper  Stopper
}

// NewConsole Конструктор Console.
func NewConsole(in io.Reader, out io.Writer, settings SettingsReloader, stopper Stopper) *Console {
	return &Console{
		in:       in,
		out:      out,
		settings: settings,
		stopper:  stopper,
	}
}

// Run Читает команды до /stop, конца ввода или отмены контекста.
// Горутина чтения может остаться заблокированной на вводе до завершения процесса.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go c.readLines(ctx, lines)

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("Консоль остановлена по контексту")
			return nil
		case line, ok := <-lines:
			if !ok {
				logger.Log.Info("Ввод консоли закрыт, сервер продолжает работу")
				return nil
			}

			if stop := c.execute(line); stop {
				return nil
			}
		}
	}
}

// Выполняет одну команду. Возвращает true, если консоль должна завершиться.
func (c *Console) execute(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return false

	case CommandStop:
		c.println("Остановка сервера...")
		c.stopper.Stop()
		return true

	case CommandReload:
		c.println("Текущие настройки:", c.settings.Snapshot().String())

		if err := c.settings.Reload(); err != nil {
			c.println("Не удалось перезагрузить настройки, действуют прежние:", err.Error())
		} else {
			c.println("Настройки перезагружены")
		}

		c.println("Настройки после перезагрузки:", c.settings.Snapshot().String())
		return false

	default:
		c.println(helpText)
		return false
	}
}

// Читает ввод построчно. Ошибки чтения (кроме конца ввода) логируются, чтение продолжается.
func (c *Console) readLines(ctx context.Context, lines chan<- string) {
	defer close(lines)

	reader := bufio.NewReader(c.in)

	for {
		line, err := reader.ReadString('\n')

		if line != "" {
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}

		if err == nil {
			continue
		}

		if errors.Is(err, io.EOF) {
			return
		}

		logger.Log.Warn("Ошибка при чтении ввода консоли", logger.String("err", err.Error()))

		select {
		case <-time.After(readErrorDelay):
		case <-ctx.Done():
			return
		}
	}
}

func (c *Console) println(a ...any) {
	if _, err := fmt.Fprintln(c.out, a...); err != nil {
		logger.Log.Debug("Не удалось вывести сообщение консоли", logger.String("err", err.Error()))
	}
}
