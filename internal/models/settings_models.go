package models

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Settings Модель настроек сервера, загружаемых из файла настроек.
// Заменяется целиком при перезагрузке, частичное изменение полей не допускается.
type Settings struct {
	Domain              string `json:"domain"`
	Port                int    `json:"port"`
	PublicDirectoryPath string `json:"publicDirectoryPath"`
}

// Validate Валидация настроек: все поля обязательны, порт в диапазоне 1-65535.
func (s Settings) Validate() error {
	var problems []error

	if strings.TrimSpace(s.Domain) == "" {
		problems = append(problems, errors.New("не указан domain"))
	}

	if s.Port < 1 || s.Port > 65535 {
		problems = append(problems, fmt.Errorf("некорректный port: %d", s.Port))
	}

	if strings.TrimSpace(s.PublicDirectoryPath) == "" {
		problems = append(problems, errors.New("не указан publicDirectoryPath"))
	}

	return errors.Join(problems...)
}

// Address Адрес для прослушивания в формате host:port.
func (s Settings) Address() string {
	return net.JoinHostPort(s.Domain, strconv.Itoa(s.Port))
}

// String Стрингер для Settings (используется в выводе консоли).
func (s Settings) String() string {
	return fmt.Sprintf("domain=%s port=%d publicDirectoryPath=%s", s.Domain, s.Port, s.PublicDirectoryPath)
}
