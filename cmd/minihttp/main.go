package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/trsv-dev/mini-http-server/internal/app"
	"github.com/trsv-dev/mini-http-server/internal/config"
	"github.com/trsv-dev/mini-http-server/internal/logger"
)

// "Сборка" и запуск сервера.
func main() {
	os.Exit(run())
}

// run Возвращает код завершения процесса: 0 при штатной остановке, 1 при фатальной ошибке запуска.
func run() (code int) {
	defer recoverExitCode(&code)

	// загружаем переменные окружения из .env, если файл есть
	if errEnv := godotenv.Load(); errEnv != nil && !os.IsNotExist(errEnv) {
		log.Println("Не удалось загрузить .env:", errEnv)
	}

	srvConfig, err := config.InitConfig(os.Args[1:])
	if err != nil {
		log.Println("Некорректная конфигурация:", err)
		return 1
	}

	logger.InitLogger(srvConfig.LogLevel, srvConfig.LogOutput)
	// отложенное закрытие ресурса (актуально если используется файл для логирования)
	defer logger.Close()

	application := app.New(srvConfig, os.Stdin, os.Stdout)

	// канал системных сигналов
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	go func() {
		sig, ok := <-stop
		if !ok {
			return
		}
		logger.Log.Info("Получен сигнал остановки приложения", logger.String("sig", sig.String()))
		application.Stop()
	}()

	if err = application.Run(context.Background()); err != nil {
		logger.Log.Error("Фатальная ошибка запуска", logger.String("err", err.Error()))
		return 1
	}

	return 0
}

// recoverExitCode recover для логирования паник в main, паника завершает процесс с кодом 1.
// Вызывается только через defer.
func recoverExitCode(code *int) {
	if r := recover(); r != nil {
		log.Println("Паника в main:", fmt.Sprintf("%v", r))
		*code = 1
	}
}
