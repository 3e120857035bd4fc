package service

import (
	"blob-url-server/config"
	"blob-url-server/internal/model"
	"blob-url-server/internal/ports"
	"context"
	"fmt"
)

// NewURLSigner : выбирает клиент SDK по версии подписи из конфигурации
func NewURLSigner(ctx context.Context, cfg config.S3Config) (ports.URLSigner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.SignatureVersion {
	case config.SignatureV4:
		return NewS3Service(ctx, cfg)
	case config.SignatureV2:
		return NewMinioV2Signer(cfg)
	default:
		return nil, model.NewConfigurationError("signature_version", fmt.Sprintf("неизвестная версия подписи %q", cfg.SignatureVersion))
	}
}

// NewMinioStorage : общее S3 хранилище под ограничением MinIO
func NewMinioStorage(signer ports.URLSigner, cfg config.S3Config) ports.BlobStorage {
	return NewMinioBlobStorage(NewS3BlobStorage(signer, cfg), cfg)
}
