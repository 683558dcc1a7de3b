package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config Параметры запуска процесса. Перезагружаемые настройки сервера (адрес, порт, каталог)
// хранятся отдельно, в файле SettingsPath.
type Config struct {
	SettingsPath    string
	LogLevel        string
	LogOutput       string
	WatchSettings   bool
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

// InitConfig Инициализация структуры, содержащей конфигурацию процесса, полученную из флагов или
// переменных окружения. Переменные окружения имеют приоритет над флагами.
func InitConfig(args []string) (*Config, error) {
	config := &Config{}

	fs := flag.NewFlagSet("minihttp", flag.ContinueOnError)

	fs.StringVar(&config.SettingsPath, "c", "settings.json", "Path to the settings file (domain, port, publicDirectoryPath)")
	fs.StringVar(&config.LogLevel, "ll", "Info", "Log level for logging (example: Debug, Info, Warn, Error)")
	fs.StringVar(&config.LogOutput, "lo", "stdout", "Log output: stdout, stderr or path to a log file")
	fs.BoolVar(&config.WatchSettings, "w", false, "Reload settings automatically when the settings file changes")
	fs.DurationVar(&config.ShutdownTimeout, "st", 5*time.Second, "Max time to wait for in-flight requests on stop")
	fs.DurationVar(&config.ReadTimeout, "rt", 10*time.Second, "HTTP read timeout")
	fs.DurationVar(&config.WriteTimeout, "wt", 30*time.Second, "HTTP write timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if value, ok := os.LookupEnv("SETTINGS_PATH"); ok {
		config.SettingsPath = value
	}

	if value, ok := os.LookupEnv("LOG_LEVEL"); ok {
		config.LogLevel = value
	}

	if value, ok := os.LookupEnv("LOG_OUTPUT"); ok {
		config.LogOutput = value
	}

	if value, ok := os.LookupEnv("WATCH_SETTINGS"); ok {
		watch, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("некорректное значение WATCH_SETTINGS=%q: %w", value, err)
		}
		config.WatchSettings = watch
	}

	durations := []struct {
		env    string
		target *time.Duration
	}{
		{"SHUTDOWN_TIMEOUT", &config.ShutdownTimeout},
		{"READ_TIMEOUT", &config.ReadTimeout},
		{"WRITE_TIMEOUT", &config.WriteTimeout},
	}

	for _, d := range durations {
		value, ok := os.LookupEnv(d.env)
		if !ok {
			continue
		}

		parsed, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("некорректное значение %s=%q: %w", d.env, value, err)
		}
		*d.target = parsed
	}

	return config, nil
}
