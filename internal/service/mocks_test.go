package service_test

import (
	"blob-url-server/internal/model"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockURLSigner struct{ mock.Mock }

func (m *MockURLSigner) PresignGetURL(ctx context.Context, bucket, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, bucket, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockURLSigner) PresignPutURL(ctx context.Context, bucket, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, bucket, key, expire)
	return args.String(0), args.Error(1)
}

type MockBlobStorage struct{ mock.Mock }

func (m *MockBlobStorage) BuildSecureURL(ctx context.Context, blobKey string, expirationOffset *int, bucket model.BucketSelector) (*model.SignedURL, error) {
	args := m.Called(ctx, blobKey, expirationOffset, bucket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SignedURL), args.Error(1)
}

func (m *MockBlobStorage) BuildUploadURL(ctx context.Context, blobKey string, expirationOffset *int, bucket model.BucketSelector) (*model.SignedURL, error) {
	args := m.Called(ctx, blobKey, expirationOffset, bucket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SignedURL), args.Error(1)
}

func intPtr(v int) *int {
	return &v
}
