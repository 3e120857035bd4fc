package service

import (
	"blob-url-server/internal/model"
	"blob-url-server/internal/ports"
	"context"
	"log/slog"
	"strings"
)

// PresignedURLIssuer : проверяет запрос и выдаёт presigned URL из хранилища.
// Ссылки не кэшируются и не отзываются, срок проверяет само хранилище по подписи
type PresignedURLIssuer struct {
	storage ports.BlobStorage
	log     *slog.Logger
}

func NewPresignedURLIssuer(storage ports.BlobStorage, log *slog.Logger) *PresignedURLIssuer {
	if log == nil {
		log = slog.Default()
	}
	return &PresignedURLIssuer{storage: storage, log: log}
}

// Issue : ссылка на чтение блоба
func (i *PresignedURLIssuer) Issue(ctx context.Context, request model.PresignRequest) (*model.SignedURL, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}

	signed, err := i.storage.BuildSecureURL(ctx, request.BlobKey, request.ExpirationOffset, request.Bucket)
	if err != nil {
		return nil, err
	}

	i.log.DebugContext(ctx, "выдана ссылка на чтение", "key", request.BlobKey, "bucket", signed.Bucket, "expires_in", signed.ExpiresIn)
	return signed, nil
}

// IssueUpload : ссылка на загрузку блоба
func (i *PresignedURLIssuer) IssueUpload(ctx context.Context, request model.PresignRequest) (*model.SignedURL, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}

	signed, err := i.storage.BuildUploadURL(ctx, request.BlobKey, request.ExpirationOffset, request.Bucket)
	if err != nil {
		return nil, err
	}

	i.log.DebugContext(ctx, "выдана ссылка на загрузку", "key", request.BlobKey, "bucket", signed.Bucket, "expires_in", signed.ExpiresIn)
	return signed, nil
}

func validateRequest(request model.PresignRequest) error {
	if strings.TrimSpace(request.BlobKey) == "" {
		return model.NewValidationError("key", "ключ блоба не может быть пустым")
	}
	if request.ExpirationOffset != nil && *request.ExpirationOffset <= 0 {
		return model.NewValidationError("expires", "срок жизни ссылки должен быть положительным")
	}
	return nil
}
