package model

import (
	"errors"
	"fmt"
)

// ValidationError : неверные входные данные запроса. Не ретраится, отдаётся клиенту как есть
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ошибка валидации %s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// ConfigurationError : отсутствующие или неверные настройки хранилища
type ConfigurationError struct {
	Field   string
	Message string
}

func NewConfigurationError(field, message string) *ConfigurationError {
	return &ConfigurationError{Field: field, Message: message}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("ошибка конфигурации %s: %s", e.Field, e.Message)
}

func IsConfigurationError(err error) bool {
	var configurationErr *ConfigurationError
	return errors.As(err, &configurationErr)
}
