package config

import (
	"blob-url-server/internal/model"
	"errors"
	"fmt"
	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
	"io/fs"
	"net/http"
	"net/url"
	"os"
)

const (
	defaultServerAddr = ":8080"
	defaultRegion     = "us-east-1"
)

type AppConfig struct {
	ServerAddr string       `yaml:"serverAddr" env:"SERVER_ADDR"`
	S3Config   S3Config     `yaml:"s3Config"`
	JWT        JWTConfig    `yaml:"jwt"`
	Logger     LoggerConfig `yaml:"logger"`
}

// LoadConfig : читает yaml файл (если он есть), затем переопределяет значения из переменных окружения
func LoadConfig(path string) (*AppConfig, error) {
	var cfg AppConfig

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	default:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.S3Config.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = defaultServerAddr
	}
	if cfg.S3Config.Region == "" {
		cfg.S3Config.Region = defaultRegion
	}
	if cfg.S3Config.SignatureVersion == "" {
		cfg.S3Config.SignatureVersion = SignatureV4
	}
	if cfg.S3Config.MaxExpiration == 0 {
		cfg.S3Config.MaxExpiration = MaxPresignExpiration
	}
	if cfg.S3Config.DefaultExpiration == 0 {
		cfg.S3Config.DefaultExpiration = cfg.S3Config.MaxExpiration
	}
}

// Validate : проверка настроек хранилища, все ошибки имеют тип model.ConfigurationError
func (cfg S3Config) Validate() error {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return model.NewConfigurationError("credentials", "не заданы ключи доступа")
	}
	if cfg.Region == "" {
		return model.NewConfigurationError("region", "не задан регион")
	}
	if cfg.Bucket == "" {
		return model.NewConfigurationError("bucket", "не задан основной бакет")
	}
	if cfg.SignatureVersion != SignatureV4 && cfg.SignatureVersion != SignatureV2 {
		return model.NewConfigurationError("signature_version", fmt.Sprintf("неизвестная версия подписи %q", cfg.SignatureVersion))
	}
	if cfg.SignatureVersion == SignatureV2 && cfg.Endpoint == "" {
		return model.NewConfigurationError("endpoint", "для подписи s3v2 нужен endpoint MinIO")
	}
	if cfg.Endpoint != "" {
		endpoint, err := url.Parse(cfg.Endpoint)
		if err != nil || (endpoint.Scheme != "http" && endpoint.Scheme != "https") || endpoint.Host == "" {
			return model.NewConfigurationError("endpoint", "endpoint должен быть вида http(s)://host:port, получено "+cfg.Endpoint)
		}
	}
	if cfg.MaxExpiration <= 0 || cfg.MaxExpiration > MaxPresignExpiration {
		return model.NewConfigurationError("max_expiration_offset", fmt.Sprintf("должно быть от 1 до %d секунд", MaxPresignExpiration))
	}
	if cfg.DefaultExpiration <= 0 || cfg.DefaultExpiration > cfg.MaxExpiration {
		return model.NewConfigurationError("expiration_offset", "срок по умолчанию больше максимального")
	}
	return nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:    serverAddress,
		Handler: router,
	}

	return server, router
}
