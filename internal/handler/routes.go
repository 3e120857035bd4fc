package handler

import (
	"blob-url-server/internal/security"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRoutes(r chi.Router, h *PresignHandler, jwtService *security.JWTService) {
	r.Get("/health", Health)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/blobs", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))
		r.Get("/url", h.GetDownloadURL)
		r.Get("/upload-url", h.GetUploadURL)
	})
}
