package util

import (
	"blob-url-server/config"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
)

// NewLogger : собирает slog логгер по настройкам, пустые значения означают console/info
func NewLogger(app string, cfg config.LoggerConfig) (*slog.Logger, error) {
	return newLogger(os.Stdout, app, cfg)
}

func newLogger(w io.Writer, app string, cfg config.LoggerConfig) (*slog.Logger, error) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Encoding == "" {
		cfg.Encoding = "console"
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Encoding {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "console":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("неподдерживаемый формат логов %s", cfg.Encoding)
	}

	return slog.New(handler).With("app", app), nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("неподдерживаемый уровень логов %s", level)
	}
}

func LogError(message string, err error) error {
	slog.Error(message, "error", err)
	return fmt.Errorf("%s: %w", message, err)
}

func HandleError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    int    `json:"code"`
	}{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}

	json.NewEncoder(w).Encode(errorResponse)
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("ошибка записи ответа", "error", err)
	}
}
