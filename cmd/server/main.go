package main

import (
	"context"
	"net/http"

	"NoteHub/internal/config"
	"NoteHub/internal/googleid"
	"NoteHub/internal/handlers"
	"NoteHub/internal/middleware"
	"NoteHub/internal/repo"
	"NoteHub/internal/service"
	"NoteHub/internal/storage/s3"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	minioClient, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
	})
	if err != nil {
		sugar.Fatalw("failed to create minio client", "error", err)
	}
	storageClient, err := s3.NewClient(ctx, minioClient, cfg.S3Bucket, cfg.S3KeyPrefix, cfg.S3PublicBaseURL)
	if err != nil {
		sugar.Fatalw("failed to initialize storage client", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	noteRepo := repo.NewNoteRepository(gormDB)

	googleVerifier := googleid.NewGoogleVerifier(cfg.GoogleClientID)
	userService := service.NewUserService(userRepo, googleVerifier)
	noteService := service.NewNoteService(noteRepo, storageClient, sugar)

	h := handlers.NewHandler(userService, noteService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"S3Bucket", cfg.S3Bucket,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
