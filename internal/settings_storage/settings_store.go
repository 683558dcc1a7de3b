package settings_storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/trsv-dev/mini-http-server/internal/errs"
	"github.com/trsv-dev/mini-http-server/internal/logger"
	"github.com/trsv-dev/mini-http-server/internal/models"
)

// ChangeHook Функция, вызываемая после успешной перезагрузки настроек.
type ChangeHook func(prev, next models.Settings)

// SettingsStore Хранилище единственной активной записи настроек.
type SettingsStore struct {
	path string

	mu      sync.RWMutex
	current *models.Settings

	// reloadMu сериализует перезагрузки, чтение файла идёт вне mu
	reloadMu sync.Mutex
	hooks    []ChangeHook
}

// NewSettingsStore Конструктор SettingsStore.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{
		path: path,
	}
}

// Path Путь к файлу настроек.
func (s *SettingsStore) Path() string {
	return s.path
}

// Load Читает и валидирует файл настроек, при успехе делает запись активной.
// Ошибка при первой загрузке считается фатальной вызывающей стороной.
func (s *SettingsStore) Load() (models.Settings, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	settings, err := readSettings(s.path)
	if err != nil {
		return models.Settings{}, err
	}

	s.swap(settings)

	logger.Log.Info("Настройки загружены",
		logger.String("path", s.path),
		logger.String("address", settings.Address()),
		logger.String("public_dir", settings.PublicDirectoryPath))

	return settings, nil
}

// Reload Перечитывает файл настроек и атомарно заменяет активную запись только при успехе.
// При ошибке прежние настройки остаются в силе.
func (s *SettingsStore) Reload() error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	settings, err := readSettings(s.path)
	if err != nil {
		logger.Log.Warn("Не удалось перезагрузить настройки, используются прежние",
			logger.String("path", s.path),
			logger.String("err", err.Error()))
		return err
	}

	old := s.swap(settings)

	logger.Log.Info("Настройки перезагружены",
		logger.String("path", s.path),
		logger.String("address", settings.Address()),
		logger.String("public_dir", settings.PublicDirectoryPath))

	for _, hook := range s.hooks {
		hook(old, settings)
	}

	return nil
}

// Snapshot Возвращает копию активной записи настроек.
func (s *SettingsStore) Snapshot() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.Settings{}
	}

	return *s.current
}

// OnChange Регистрирует функцию, вызываемую после каждой успешной перезагрузки.
func (s *SettingsStore) OnChange(hook ChangeHook) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	s.hooks = append(s.hooks, hook)
}

// Единственная мутация активной записи.
func (s *SettingsStore) swap(settings models.Settings) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	var old models.Settings
	if s.current != nil {
		old = *s.current
	}

	s.current = &settings

	return old
}

// Чтение, декодирование и валидация файла настроек.
func readSettings(path string) (models.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Settings{}, errs.NewErrSettingsMissing(path, err)
		}
		return models.Settings{}, errs.NewErrSettingsMalformed(path, err)
	}

	var settings models.Settings
	if err = json.Unmarshal(data, &settings); err != nil {
		return models.Settings{}, errs.NewErrSettingsMalformed(path, err)
	}

	if err = settings.Validate(); err != nil {
		return models.Settings{}, errs.NewErrSettingsMalformed(path, err)
	}

	return settings, nil
}
