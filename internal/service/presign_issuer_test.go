package service_test

import (
	"blob-url-server/config"
	"blob-url-server/internal/model"
	"blob-url-server/internal/service"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Endpoint:          "http://localhost:9000",
		AccessKeyID:       "minioadmin",
		SecretAccessKey:   "minioadmin",
		Region:            "us-east-1",
		Bucket:            "general-bucket",
		BucketML:          "ml-bucket",
		DefaultExpiration: config.MaxPresignExpiration,
		MaxExpiration:     config.MaxPresignExpiration,
		SignatureVersion:  config.SignatureV4,
	}
}

func newTestIssuer(signer *MockURLSigner, cfg config.S3Config) *service.PresignedURLIssuer {
	return service.NewPresignedURLIssuer(service.NewMinioStorage(signer, cfg), nil)
}

func TestIssue_DefaultExpiration(t *testing.T) {
	ctx := context.Background()
	signer := new(MockURLSigner)
	signer.On("PresignGetURL", ctx, "general-bucket", "images/1.png", 604800*time.Second).
		Return("http://localhost:9000/general-bucket/images/1.png?X-Amz-Expires=604800", nil)

	signed, err := newTestIssuer(signer, testS3Config()).Issue(ctx, model.PresignRequest{
		BlobKey: "images/1.png",
		Bucket:  model.BucketGeneral,
	})

	require.NoError(t, err)
	assert.Contains(t, signed.URL, "general-bucket")
	assert.Contains(t, signed.URL, "images/1.png")
	assert.Contains(t, signed.URL, "X-Amz-Expires=604800")
	assert.Equal(t, "general-bucket", signed.Bucket)
	assert.Equal(t, 604800, signed.ExpiresIn)
	signer.AssertExpectations(t)
}

func TestIssue_ExpirationAboveCeiling(t *testing.T) {
	signer := new(MockURLSigner)

	signed, err := newTestIssuer(signer, testS3Config()).Issue(context.Background(), model.PresignRequest{
		BlobKey:          "images/1.png",
		ExpirationOffset: intPtr(604801),
		Bucket:           model.BucketGeneral,
	})

	require.Error(t, err)
	assert.Nil(t, signed)
	assert.True(t, model.IsValidationError(err))
	signer.AssertNotCalled(t, "PresignGetURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIssue_CeilingIsInclusive(t *testing.T) {
	ctx := context.Background()
	signer := new(MockURLSigner)
	signer.On("PresignGetURL", ctx, "general-bucket", "a.bin", 604800*time.Second).Return("http://signed", nil)

	signed, err := newTestIssuer(signer, testS3Config()).Issue(ctx, model.PresignRequest{
		BlobKey:          "a.bin",
		ExpirationOffset: intPtr(604800),
	})

	require.NoError(t, err)
	assert.Equal(t, "http://signed", signed.URL)
}

func TestIssue_OmittedEqualsExplicitDefault(t *testing.T) {
	ctx := context.Background()
	cfg := testS3Config()
	cfg.DefaultExpiration = 3600

	signer := new(MockURLSigner)
	signer.On("PresignGetURL", ctx, "general-bucket", "doc.pdf", time.Hour).Return("http://signed/doc.pdf", nil).Twice()

	issuer := newTestIssuer(signer, cfg)

	omitted, err := issuer.Issue(ctx, model.PresignRequest{BlobKey: "doc.pdf"})
	require.NoError(t, err)

	explicit, err := issuer.Issue(ctx, model.PresignRequest{BlobKey: "doc.pdf", ExpirationOffset: intPtr(3600)})
	require.NoError(t, err)

	assert.Equal(t, omitted, explicit)
	assert.Equal(t, 3600, omitted.ExpiresIn)
	signer.AssertExpectations(t)
}

func TestIssue_BucketSelectors(t *testing.T) {
	tests := []struct {
		name     string
		selector model.BucketSelector
		bucket   string
	}{
		{"ml", model.BucketML, "ml-bucket"},
		{"general", model.BucketGeneral, "general-bucket"},
		{"по умолчанию", "", "general-bucket"},
		{"web как синоним general", "web", "general-bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			signer := new(MockURLSigner)
			signer.On("PresignGetURL", ctx, tt.bucket, "k", time.Minute).Return("http://signed/"+tt.bucket, nil)

			signed, err := newTestIssuer(signer, testS3Config()).Issue(ctx, model.PresignRequest{
				BlobKey:          "k",
				ExpirationOffset: intPtr(60),
				Bucket:           tt.selector,
			})

			require.NoError(t, err)
			assert.Equal(t, "http://signed/"+tt.bucket, signed.URL)
			assert.Equal(t, tt.bucket, signed.Bucket)
			signer.AssertExpectations(t)
		})
	}
}

func TestIssue_InvalidRequests(t *testing.T) {
	tests := []struct {
		name    string
		request model.PresignRequest
		field   string
	}{
		{"пустой ключ", model.PresignRequest{BlobKey: ""}, "key"},
		{"ключ из пробелов", model.PresignRequest{BlobKey: "   "}, "key"},
		{"нулевой срок", model.PresignRequest{BlobKey: "k", ExpirationOffset: intPtr(0)}, "expires"},
		{"отрицательный срок", model.PresignRequest{BlobKey: "k", ExpirationOffset: intPtr(-5)}, "expires"},
		{"неизвестный бакет", model.PresignRequest{BlobKey: "k", Bucket: "archive"}, "bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer := new(MockURLSigner)

			_, err := newTestIssuer(signer, testS3Config()).Issue(context.Background(), tt.request)

			var validationErr *model.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			signer.AssertNotCalled(t, "PresignGetURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestIssue_DefaultAboveCeilingRejected(t *testing.T) {
	cfg := testS3Config()
	cfg.DefaultExpiration = 700000
	signer := new(MockURLSigner)

	signed, err := newTestIssuer(signer, cfg).Issue(context.Background(), model.PresignRequest{BlobKey: "images/1.png"})

	require.Error(t, err)
	assert.Nil(t, signed)
	assert.True(t, model.IsValidationError(err))
	signer.AssertNotCalled(t, "PresignGetURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIssue_MLBucketNotConfigured(t *testing.T) {
	cfg := testS3Config()
	cfg.BucketML = ""
	signer := new(MockURLSigner)

	_, err := newTestIssuer(signer, cfg).Issue(context.Background(), model.PresignRequest{
		BlobKey: "model.bin",
		Bucket:  model.BucketML,
	})

	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
	signer.AssertNotCalled(t, "PresignGetURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIssue_SignerErrorPropagates(t *testing.T) {
	ctx := context.Background()
	sdkErr := errors.New("signing failed")
	signer := new(MockURLSigner)
	signer.On("PresignGetURL", ctx, "general-bucket", "k", 604800*time.Second).Return("", sdkErr)

	_, err := newTestIssuer(signer, testS3Config()).Issue(ctx, model.PresignRequest{BlobKey: "k"})

	require.Error(t, err)
	assert.ErrorIs(t, err, sdkErr)
	assert.False(t, model.IsValidationError(err))
}

func TestIssueUpload(t *testing.T) {
	ctx := context.Background()
	signer := new(MockURLSigner)
	signer.On("PresignPutURL", ctx, "ml-bucket", "datasets/train.csv", 10*time.Minute).Return("http://signed/put", nil)

	issuer := newTestIssuer(signer, testS3Config())

	signed, err := issuer.IssueUpload(ctx, model.PresignRequest{
		BlobKey:          "datasets/train.csv",
		ExpirationOffset: intPtr(600),
		Bucket:           model.BucketML,
	})
	require.NoError(t, err)
	assert.Equal(t, "http://signed/put", signed.URL)
	assert.Equal(t, 600, signed.ExpiresIn)

	_, err = issuer.IssueUpload(ctx, model.PresignRequest{BlobKey: "x", ExpirationOffset: intPtr(604801)})
	assert.True(t, model.IsValidationError(err))
	signer.AssertNumberOfCalls(t, "PresignPutURL", 1)
}

func TestIssue_Concurrent(t *testing.T) {
	signer := new(MockURLSigner)
	signer.On("PresignGetURL", mock.Anything, "general-bucket", mock.Anything, 604800*time.Second).Return("http://signed", nil)

	issuer := newTestIssuer(signer, testS3Config())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			signed, err := issuer.Issue(context.Background(), model.PresignRequest{BlobKey: "images/1.png"})
			assert.NoError(t, err)
			assert.Equal(t, "http://signed", signed.URL)
		}()
	}
	wg.Wait()

	signer.AssertNumberOfCalls(t, "PresignGetURL", 20)
}
