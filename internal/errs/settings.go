package errs

import (
	"errors"
	"fmt"
)

// ErrAlreadyStarted Повторный запуск уже работающего слушателя.
var ErrAlreadyStarted = errors.New("слушатель уже запущен")

// ErrSettingsMissing Кастомная ошибка, сообщающая, что файл настроек не найден.
type ErrSettingsMissing struct {
	Path string
	Err  error
}

func (sm *ErrSettingsMissing) Error() string {
	return fmt.Sprintf("Файл настроек %s не найден. Ошибка: %v", sm.Path, sm.Err)
}

func (sm *ErrSettingsMissing) Unwrap() error {
	return sm.Err
}

func NewErrSettingsMissing(path string, err error) *ErrSettingsMissing {
	return &ErrSettingsMissing{
		Path: path,
		Err:  err,
	}
}

// ErrSettingsMalformed Кастомная ошибка, сообщающая, что файл настроек не читается,
// содержит некорректный JSON или не проходит валидацию.
type ErrSettingsMalformed struct {
	Path string
	Err  error
}

func (sm *ErrSettingsMalformed) Error() string {
	return fmt.Sprintf("Ошибка в файле настроек %s: %v", sm.Path, sm.Err)
}

func (sm *ErrSettingsMalformed) Unwrap() error {
	return sm.Err
}

func NewErrSettingsMalformed(path string, err error) *ErrSettingsMalformed {
	return &ErrSettingsMalformed{
		Path: path,
		Err:  err,
	}
}

// ErrListenerBind Кастомная ошибка, сообщающая, что не удалось занять адрес (порт занят, адрес некорректен).
type ErrListenerBind struct {
	Address string
	Err     error
}

func (lb *ErrListenerBind) Error() string {
	return fmt.Sprintf("Не удалось запустить сервер на %s. Ошибка: %v", lb.Address, lb.Err)
}

func (lb *ErrListenerBind) Unwrap() error {
	return lb.Err
}

func NewErrListenerBind(address string, err error) *ErrListenerBind {
	return &ErrListenerBind{
		Address: address,
		Err:     err,
	}
}
