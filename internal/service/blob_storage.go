package service

import (
	"blob-url-server/config"
	"blob-url-server/internal/model"
	"blob-url-server/internal/ports"
	"blob-url-server/internal/util"
	"context"
	"time"
)

// S3BlobStorage : общее S3 хранилище. Определяет бакет и срок по умолчанию, подпись отдаёт URLSigner
type S3BlobStorage struct {
	signer            ports.URLSigner
	bucket            string
	bucketML          string
	defaultExpiration int
}

func NewS3BlobStorage(signer ports.URLSigner, cfg config.S3Config) *S3BlobStorage {
	return &S3BlobStorage{
		signer:            signer,
		bucket:            cfg.Bucket,
		bucketML:          cfg.BucketML,
		defaultExpiration: cfg.DefaultExpiration,
	}
}

// BuildSecureURL : presigned GET ссылка на блоб
func (s *S3BlobStorage) BuildSecureURL(ctx context.Context, blobKey string, expirationOffset *int, bucket model.BucketSelector) (*model.SignedURL, error) {
	bucketName, offset, err := s.resolve(expirationOffset, bucket)
	if err != nil {
		return nil, err
	}

	url, err := s.signer.PresignGetURL(ctx, bucketName, blobKey, time.Duration(offset)*time.Second)
	if err != nil {
		return nil, util.LogError("[S3BlobStorage] не удалось подписать ссылку на "+blobKey, err)
	}
	return &model.SignedURL{URL: url, Bucket: bucketName, ExpiresIn: offset}, nil
}

// BuildUploadURL : presigned PUT ссылка для загрузки блоба
func (s *S3BlobStorage) BuildUploadURL(ctx context.Context, blobKey string, expirationOffset *int, bucket model.BucketSelector) (*model.SignedURL, error) {
	bucketName, offset, err := s.resolve(expirationOffset, bucket)
	if err != nil {
		return nil, err
	}

	url, err := s.signer.PresignPutURL(ctx, bucketName, blobKey, time.Duration(offset)*time.Second)
	if err != nil {
		return nil, util.LogError("[S3BlobStorage] не удалось подписать ссылку загрузки "+blobKey, err)
	}
	return &model.SignedURL{URL: url, Bucket: bucketName, ExpiresIn: offset}, nil
}

func (s *S3BlobStorage) resolve(expirationOffset *int, bucket model.BucketSelector) (string, int, error) {
	bucketName, err := s.bucketName(bucket)
	if err != nil {
		return "", 0, err
	}

	offset := s.defaultExpiration
	if expirationOffset != nil {
		offset = *expirationOffset
	}

	return bucketName, offset, nil
}

func (s *S3BlobStorage) bucketName(bucket model.BucketSelector) (string, error) {
	selector, err := bucket.Normalize()
	if err != nil {
		return "", err
	}

	name := s.bucket
	if selector == model.BucketML {
		name = s.bucketML
	}

	if name == "" {
		return "", model.NewValidationError("bucket", "бакет "+string(selector)+" не настроен")
	}
	return name, nil
}
