package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"my-videos/domain/repository"
	youtubeclient "my-videos/infrastructure/clients/youtube"
	"my-videos/infrastructure/configuration"
	"my-videos/infrastructure/logger"
	"my-videos/infrastructure/persistence"
	"my-videos/infrastructure/session"
	httpHandler "my-videos/interfaces/http"
	"my-videos/server"
	"my-videos/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	db, vendor, err := InitiateDatabase()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Database initialization failed")
		os.Exit(1)
	}
	logger.GetLogger().WithField("vendor", vendor).Info("Database connected.")

	if err := persistence.EnsureVideoSchema(db, vendor); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed ensuring video schema")
		os.Exit(1)
	}

	var videoRepository repository.IVideo
	if vendor == "postgres" {
		videoRepository = persistence.NewVideoRepositoryPostgres(db)
	} else {
		videoRepository = persistence.NewVideoRepository(db)
	}

	// One-time bootstrap; duplicate codes are skipped so restarts are safe.
	if err := persistence.SeedVideos(ctx, videoRepository); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed seeding videos")
		os.Exit(1)
	}

	videoUsecase := usecase.NewVideoUsecase(videoRepository)
	videoHandler := httpHandler.NewVideoHandler(videoUsecase)

	var youtubeHandler httpHandler.IYouTubeHandler
	var youtubeAuthHandler httpHandler.IYouTubeAuthHandler
	if oauthConfig, err := configuration.GetOAuthConfig(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("OAuth configuration unavailable - YouTube features disabled")
	} else {
		youtubeClient := youtubeclient.NewClient(oauthConfig)
		youtubeUsecase := usecase.NewYouTubeUsecase(youtubeClient, videoRepository)
		youtubeHandler = httpHandler.NewYouTubeHandler(youtubeUsecase)

		youtubeAuthHandler, err = httpHandler.NewYouTubeAuthHandler()
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to initialize auth handler")
			youtubeAuthHandler = nil
		}
	}

	sessionStore := session.NewStore()
	router := server.InitiateRouter(videoHandler, youtubeHandler, youtubeAuthHandler, sessionStore)

	logger.GetLogger().WithFields(map[string]interface{}{
		"host": app.Host,
		"port": app.Port,
	}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:         fmt.Sprintf("%s:%d", app.Host, app.Port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// InitiateDatabase opens the store selected by configuration: the file-backed
// SQLite default, or PostgreSQL when DB_VENDOR=postgres.
func InitiateDatabase() (*sql.DB, string, error) {
	vendor := configuration.C.Database.Vendor
	switch vendor {
	case "postgres":
		db, err := persistence.NewPostgreSQLDB()
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Cannot connect to PostgreSQL")
			return nil, vendor, err
		}
		return db, vendor, nil
	default:
		db, err := persistence.NewSqliteDb()
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Cannot open SQLite database")
			return nil, "sqlite", err
		}
		return db, "sqlite", nil
	}
}
