package service

import (
	"blob-url-server/config"
	"blob-url-server/internal/model"
	"blob-url-server/internal/util"
	"context"
	"crypto/tls"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioV2Signer : подпись ссылок старой схемой s3v2 через minio-go
type MinioV2Signer struct {
	client *minio.Client
}

func NewMinioV2Signer(cfg config.S3Config) (*MinioV2Signer, error) {
	endpoint, err := url.Parse(cfg.Endpoint)
	if err != nil || endpoint.Host == "" {
		return nil, model.NewConfigurationError("endpoint", "неверный адрес MinIO: "+cfg.Endpoint)
	}

	// регион задан явно, иначе minio-go сходит в сеть за расположением бакета
	client, err := minio.New(endpoint.Host, &minio.Options{
		Creds:     credentials.NewStaticV2(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure:    endpoint.Scheme == "https",
		Region:    cfg.Region,
		Transport: newMinioTransport(cfg.DisableTLSVerify),
	})
	if err != nil {
		return nil, util.LogError("[MinioV2Signer] ошибка создания клиента minio", err)
	}

	return &MinioV2Signer{client: client}, nil
}

func newMinioTransport(disableTLSVerify bool) *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if disableTLSVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return transport
}

func (s *MinioV2Signer) PresignGetURL(ctx context.Context, bucket, key string, expire time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, bucket, key, expire, nil)
	if err != nil {
		return "", util.LogError("[MinioV2Signer] не удалось сгенерировать presigned GET URL", err)
	}
	return u.String(), nil
}

func (s *MinioV2Signer) PresignPutURL(ctx context.Context, bucket, key string, expire time.Duration) (string, error) {
	u, err := s.client.PresignedPutObject(ctx, bucket, key, expire)
	if err != nil {
		return "", util.LogError("[MinioV2Signer] не удалось сгенерировать presigned PUT URL", err)
	}
	return u.String(), nil
}
