package main

import (
	"blob-url-server/config"
	_ "blob-url-server/docs"
	"blob-url-server/internal/handler"
	"blob-url-server/internal/security"
	"blob-url-server/internal/service"
	"blob-url-server/internal/util"
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// @title Blob-url-server
// @version 1.0
// @description REST API для выдачи presigned URL на блобы в MinIO

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger, err := util.NewLogger("blob-url-server", cfg.Logger)
	if err != nil {
		log.Fatalf("Ошибка настройки логгера: %v", err)
	}
	slog.SetDefault(logger)

	signer, err := service.NewURLSigner(ctx, cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 клиента: %v", err)
	}

	storage := service.NewMinioStorage(signer, cfg.S3Config)
	issuer := service.NewPresignedURLIssuer(storage, logger)

	jwtService := security.NewJWTService(cfg.JWT)
	presignHandler := handler.NewPresignHandler(issuer)

	srv, router := config.SetupServer(cfg.ServerAddr)
	router.Use(middleware.Recoverer)
	router.Use(util.RequestLogger(logger))

	handler.SetupRoutes(router, presignHandler, jwtService)

	logger.Info("хранилище настроено",
		"endpoint", cfg.S3Config.Endpoint,
		"signature", cfg.S3Config.SignatureVersion,
		"bucket", cfg.S3Config.Bucket,
		"bucket_ml", cfg.S3Config.BucketML,
		"default_expiration", cfg.S3Config.DefaultExpiration,
	)

	runServer(ctx, srv)
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		slog.Info("получен сигнал остановки работы сервера", "signal", sig.String())
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		slog.Error("ошибка при остановке сервера", "error", err)
	} else {
		slog.Info("Сервер успешно остановлен")
	}
}
