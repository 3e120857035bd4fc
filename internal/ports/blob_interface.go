package ports

import (
	"blob-url-server/internal/model"
	"context"
)

// BlobStorage : хранилище блобов, выдающее ссылки с ограниченным сроком жизни.
// expirationOffset в секундах, nil означает срок по умолчанию
type BlobStorage interface {
	BuildSecureURL(ctx context.Context, blobKey string, expirationOffset *int, bucket model.BucketSelector) (*model.SignedURL, error)
	BuildUploadURL(ctx context.Context, blobKey string, expirationOffset *int, bucket model.BucketSelector) (*model.SignedURL, error)
}

type PresignIssuer interface {
	Issue(ctx context.Context, request model.PresignRequest) (*model.SignedURL, error)
	IssueUpload(ctx context.Context, request model.PresignRequest) (*model.SignedURL, error)
}
