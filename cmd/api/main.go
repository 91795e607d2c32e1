package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/devraj/portfolio-v2/backend/config"
	"github.com/devraj/portfolio-v2/backend/internal/api"
	"github.com/devraj/portfolio-v2/backend/internal/database"
	"github.com/devraj/portfolio-v2/backend/internal/router"
	"github.com/devraj/portfolio-v2/backend/internal/server"
	"github.com/devraj/portfolio-v2/backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment")
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logrus.Infof("Loaded %s", cfg)

	db, err := database.New(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	localStore, err := service.NewLocalImageStore(cfg.UploadDir)
	if err != nil {
		logrus.Fatalf("Failed to initialize upload directory: %v", err)
	}

	// S3 is optional; without it project images land on local disk.
	var hostedStore service.ProjectImageStore
	s3Cfg, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		logrus.Warnf("S3 unavailable, storing project images locally: %v", err)
	} else if s3Cfg != nil {
		hostedStore = service.NewS3ImageStore(s3Cfg)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	emailService := service.NewEmailService(cfg)
	projectService := service.NewProjectService(db, localStore.Dir())
	messageService := service.NewMessageService(db, emailService)
	profileService := service.NewProfileService(db)

	r := router.SetupRouter(cfg, db,
		api.NewAuthHandler(authService),
		api.NewProjectHandler(projectService, hostedStore, localStore),
		api.NewMessageHandler(messageService),
		api.NewProfileHandler(profileService, localStore),
		authService,
	)

	srv := server.New(cfg, r)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logrus.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		logrus.Infof("Received signal: %v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server shutdown error: %v", err)
	}
	logrus.Info("Server stopped")
}
