package ports

import (
	"context"
	"time"
)

// URLSigner : клиент SDK, подписывающий ссылки на объекты в бакете
type URLSigner interface {
	PresignGetURL(ctx context.Context, bucket, key string, expire time.Duration) (string, error)
	PresignPutURL(ctx context.Context, bucket, key string, expire time.Duration) (string, error)
}
