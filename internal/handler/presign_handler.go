package handler

import (
	"blob-url-server/internal/model"
	requestresponse "blob-url-server/internal/model/requestresponse"
	"blob-url-server/internal/ports"
	"blob-url-server/internal/security"
	"blob-url-server/internal/util"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

type PresignHandler struct {
	ports.PresignIssuer
}

func NewPresignHandler(issuer ports.PresignIssuer) *PresignHandler {
	return &PresignHandler{issuer}
}

// GetDownloadURL godoc
// @Summary Ссылка на скачивание блоба
// @Description Выдаёт presigned GET URL. Без expires используется срок по умолчанию, больше 604800 секунд (7 дней) нельзя.
// @Tags Blobs
// @Produce json
// @Param key query string true "Ключ блоба" example(images/1.png)
// @Param expires query int false "Срок жизни ссылки в секундах"
// @Param bucket query string false "Бакет: general (web) или ml" default(general)
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.PresignResponse "Подписанная ссылка"
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный ключ, срок или бакет"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/blobs/url [get]
func (h *PresignHandler) GetDownloadURL(w http.ResponseWriter, r *http.Request) {
	h.issue(w, r, h.PresignIssuer.Issue)
}

// GetUploadURL godoc
// @Summary Ссылка на загрузку блоба
// @Description Выдаёт presigned PUT URL с теми же ограничениями срока, что и ссылка на скачивание.
// @Tags Blobs
// @Produce json
// @Param key query string true "Ключ блоба" example(datasets/train.csv)
// @Param expires query int false "Срок жизни ссылки в секундах"
// @Param bucket query string false "Бакет: general (web) или ml" default(general)
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.PresignResponse "Подписанная ссылка"
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный ключ, срок или бакет"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/blobs/upload-url [get]
func (h *PresignHandler) GetUploadURL(w http.ResponseWriter, r *http.Request) {
	h.issue(w, r, h.PresignIssuer.IssueUpload)
}

type issueFunc func(ctx context.Context, request model.PresignRequest) (*model.SignedURL, error)

func (h *PresignHandler) issue(w http.ResponseWriter, r *http.Request, issue issueFunc) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	request, err := parsePresignRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if claims, err := security.GetClaimsFromContext(ctx); err == nil {
		slog.DebugContext(ctx, "запрос ссылки", "subject", claims.Subject, "key", request.BlobKey)
	}

	signed, err := issue(ctx, request)
	if err != nil {
		h.writeError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.PresignResponse{
		Data: requestresponse.PresignData{
			URL:        signed.URL,
			Key:        request.BlobKey,
			Bucket:     string(request.Bucket),
			BucketName: signed.Bucket,
			ExpiresIn:  signed.ExpiresIn,
		},
	})
}

func parsePresignRequest(r *http.Request) (model.PresignRequest, error) {
	query := r.URL.Query()

	bucket, err := model.ParseBucketSelector(query.Get("bucket"))
	if err != nil {
		return model.PresignRequest{}, err
	}

	request := model.PresignRequest{
		BlobKey: query.Get("key"),
		Bucket:  bucket,
	}

	if expires := query.Get("expires"); expires != "" {
		offset, err := strconv.Atoi(expires)
		if err != nil {
			return model.PresignRequest{}, model.NewValidationError("expires", "срок жизни должен быть целым числом секунд")
		}
		request.ExpirationOffset = &offset
	}

	return request, nil
}

func (h *PresignHandler) writeError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		util.HandleError(w, validationErr.Message, http.StatusBadRequest)
		return
	}
	util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
}

// Health godoc
// @Summary Проверка доступности сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
