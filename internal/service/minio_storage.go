package service

import (
	"blob-url-server/config"
	"blob-url-server/internal/model"
	"blob-url-server/internal/ports"
	"context"
	"fmt"
)

// MinioBlobStorage : обёртка над BlobStorage с ограничением срока жизни ссылок MinIO (не больше 7 дней).
// Запросы сверх лимита отклоняются до обращения к SDK
type MinioBlobStorage struct {
	next              ports.BlobStorage
	defaultExpiration int
	maxExpiration     int
}

func NewMinioBlobStorage(next ports.BlobStorage, cfg config.S3Config) *MinioBlobStorage {
	storage := &MinioBlobStorage{
		next:              next,
		defaultExpiration: cfg.DefaultExpiration,
		maxExpiration:     cfg.MaxExpiration,
	}
	if storage.maxExpiration <= 0 || storage.maxExpiration > config.MaxPresignExpiration {
		storage.maxExpiration = config.MaxPresignExpiration
	}
	if storage.defaultExpiration <= 0 {
		storage.defaultExpiration = storage.maxExpiration
	}
	return storage
}

func (s *MinioBlobStorage) BuildSecureURL(ctx context.Context, blobKey string, expirationOffset *int, bucket model.BucketSelector) (*model.SignedURL, error) {
	offset, err := s.checkExpiration(expirationOffset)
	if err != nil {
		return nil, err
	}
	return s.next.BuildSecureURL(ctx, blobKey, &offset, bucket)
}

func (s *MinioBlobStorage) BuildUploadURL(ctx context.Context, blobKey string, expirationOffset *int, bucket model.BucketSelector) (*model.SignedURL, error) {
	offset, err := s.checkExpiration(expirationOffset)
	if err != nil {
		return nil, err
	}
	return s.next.BuildUploadURL(ctx, blobKey, &offset, bucket)
}

// checkExpiration : лимит проверяется и для срока по умолчанию, конфигурация могла прийти в обход Validate
func (s *MinioBlobStorage) checkExpiration(expirationOffset *int) (int, error) {
	offset := s.defaultExpiration
	if expirationOffset != nil {
		offset = *expirationOffset
	}
	if offset > s.maxExpiration {
		return 0, model.NewValidationError("expires", fmt.Sprintf("срок жизни ссылки MinIO не больше 7 дней (%d секунд)", s.maxExpiration))
	}
	return offset, nil
}
