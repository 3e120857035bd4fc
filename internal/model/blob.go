package model

import "strings"

// BucketSelector : логический выбор бакета (общий или ML)
type BucketSelector string

const (
	BucketGeneral BucketSelector = "general"
	BucketML      BucketSelector = "ml"

	// bucketWeb : старое название общего бакета, принимается как синоним general
	bucketWeb BucketSelector = "web"
)

// ParseBucketSelector : пустое значение и web выбирают общий бакет
func ParseBucketSelector(value string) (BucketSelector, error) {
	return BucketSelector(value).Normalize()
}

func (b BucketSelector) Normalize() (BucketSelector, error) {
	switch BucketSelector(strings.ToLower(strings.TrimSpace(string(b)))) {
	case "", BucketGeneral, bucketWeb:
		return BucketGeneral, nil
	case BucketML:
		return BucketML, nil
	default:
		return "", NewValidationError("bucket", "неизвестный бакет: "+string(b))
	}
}

// PresignRequest : запрос на выдачу presigned URL.
// ExpirationOffset в секундах, nil означает срок по умолчанию из конфигурации
type PresignRequest struct {
	BlobKey          string
	ExpirationOffset *int
	Bucket           BucketSelector
}


// SignedURL : подписанная ссылка, имя бакета и срок жизни в секундах, с которым она подписана
type SignedURL struct {
	URL       string
	Bucket    string
	ExpiresIn int
}
