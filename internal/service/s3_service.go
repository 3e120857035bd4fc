package service

import (
	"blob-url-server/config"
	"blob-url-server/internal/util"
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service : подпись ссылок по SigV4 через aws-sdk-go-v2
type S3Service struct {
	psClient *s3.PresignClient
}

func NewS3Service(ctx context.Context, cfg config.S3Config) (*S3Service, error) {
	var client *s3.Client

	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	if cfg.Endpoint != "" {
		client = s3.New(s3.Options{
			Region:       cfg.Region,
			Credentials:  creds,
			BaseEndpoint: aws.String(cfg.Endpoint),
			UsePathStyle: true,
			HTTPClient:   newHTTPClient(cfg.DisableTLSVerify),
		})
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx,
			awsConfig.WithRegion(cfg.Region),
			awsConfig.WithCredentialsProvider(creds),
		)
		if err != nil {
			return nil, util.LogError("[S3Service] ошибка загрузки AWS config", err)
		}
		client = s3.NewFromConfig(awsCfg)
	}

	return &S3Service{
		psClient: s3.NewPresignClient(client),
	}, nil
}

func newHTTPClient(disableTLSVerify bool) *awshttp.BuildableClient {
	return awshttp.NewBuildableClient().WithTransportOptions(func(tr *http.Transport) {
		if disableTLSVerify {
			if tr.TLSClientConfig == nil {
				tr.TLSClientConfig = &tls.Config{}
			}
			tr.TLSClientConfig.InsecureSkipVerify = true
		}
	})
}

// PresignGetURL : генерация pre-signed URL для GET
func (s *S3Service) PresignGetURL(ctx context.Context, bucket, key string, expire time.Duration) (string, error) {
	req, err := s.psClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expire))
	if err != nil {
		return "", util.LogError("[S3Service] не удалось сгенерировать presigned GET URL", err)
	}

	return req.URL, nil
}

// PresignPutURL : генерация pre-signed URL для PUT
func (s *S3Service) PresignPutURL(ctx context.Context, bucket, key string, expire time.Duration) (string, error) {
	req, err := s.psClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expire))
	if err != nil {
		return "", util.LogError("[S3Service] не удалось сгенерировать presigned PUT URL", err)
	}

	return req.URL, nil
}
