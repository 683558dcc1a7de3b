package settings_storage

import "github.com/trsv-dev/mini-http-server/internal/models"

//go:generate mockgen -destination=mocks/settings_storage_mock.go -package=mocks . SettingsStorage

type SettingsStorage interface {
	Load() (models.Settings, error)
	Reload() error
	Snapshot() models.Settings
}
