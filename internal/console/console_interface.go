package console

import "github.com/trsv-dev/mini-http-server/internal/models"

//go:generate mockgen -destination=mocks/console_mock.go -package=mocks . SettingsReloader,Stopper

// SettingsReloader Хранилище настроек, которое консоль перезагружает по команде /reload.
type SettingsReloader interface {
	Reload() error
	Snapshot() models.Settings
}

// Stopper Жизненный цикл сервера, останавливаемый командой /stop.
type Stopper interface {
	Stop()
}
