package requestresponse

// PresignResponse : ответ с выданной ссылкой
type PresignResponse struct {
	Data PresignData `json:"data"`
}

// PresignData : ссылка и срок её жизни в секундах
type PresignData struct {
	URL        string `json:"url" example:"http://localhost:9000/blobs-general/images/1.png?X-Amz-Expires=604800"`
	Key        string `json:"key" example:"images/1.png"`
	Bucket     string `json:"bucket" example:"general"`
	BucketName string `json:"bucket_name" example:"blobs-general"`
	ExpiresIn  int    `json:"expires_in" example:"604800"`
}

// ErrorResponse : тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error" example:"Bad Request"`
	Message string `json:"message" example:"ключ блоба не может быть пустым"`
	Code    int    `json:"code" example:"400"`
}
