package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wesion-bff/domain/repository"
	"wesion-bff/infrastructure/cache"
	"wesion-bff/infrastructure/clients/backendapi"
	vimeoclient "wesion-bff/infrastructure/clients/vimeo"
	"wesion-bff/infrastructure/configuration"
	"wesion-bff/infrastructure/draftstore"
	"wesion-bff/infrastructure/logger"
	"wesion-bff/infrastructure/uploads"
	httpHandler "wesion-bff/interfaces/http"
	"wesion-bff/server"
	"wesion-bff/usecase"

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

	backendClient := backendapi.NewClient(configuration.C.Backend.Host)

	// Drafts survive the Vimeo authorization redirect in Redis; without Redis
	// they live in process memory, which only loses drafts on restart.
	drafts := initDraftStore(ctx)

	var videoHost repository.IVideoHost
	if configuration.C.Vimeo.AccessToken != "" {
		host, err := vimeoclient.NewClient(ctx, &vimeoclient.Config{
			Host:        configuration.C.Vimeo.Host,
			AccessToken: configuration.C.Vimeo.AccessToken,
			ChunkSize:   configuration.C.Vimeo.ChunkSize,
		})
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Vimeo client initialization failed - server-side video uploads disabled")
		} else {
			videoHost = host
			logger.GetLogger().Info("Vimeo client initialized")
		}
	} else {
		logger.GetLogger().Warn("VIMEO_ACCESS_TOKEN not set - server-side video uploads disabled")
	}

	tracker := uploads.NewTracker()
	linkTTL := time.Duration(configuration.C.Vimeo.LinkTTLMinutes) * time.Minute

	userUsecase := usecase.NewUserUsecase(backendClient)
	categoryUsecase := usecase.NewCategoryUsecase(backendClient)
	uploadUsecase := usecase.NewUploadUsecase(backendClient, videoHost, tracker)
	submissionUsecase := usecase.NewSubmissionUsecase(backendClient, backendClient, tracker)
	linkingUsecase := usecase.NewLinkingUsecase(backendClient, drafts, app.SecretKey, linkTTL)
	videoUsecase := usecase.NewVideoUsecase(backendClient)

	router := server.InitiateRouter(
		httpHandler.NewAuthHandler(userUsecase),
		httpHandler.NewUserHandler(userUsecase),
		httpHandler.NewCategoryHandler(categoryUsecase),
		httpHandler.NewVideoHandler(submissionUsecase, videoUsecase),
		httpHandler.NewFilesHandler(uploadUsecase),
		httpHandler.NewVimeoHandler(uploadUsecase),
		httpHandler.NewVimeoAuthHandler(linkingUsecase),
		app.AllowedOrigins,
		app.SecretKey,
	)

	logger.GetLogger().
		WithField("port", app.Port).
		WithField("tls", app.TLSEnabled).
		Info("Starting application")

	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", app.Port),
			Handler: router,
		}
		if app.TLSEnabled {
			if app.TLSCertFile == "" || app.TLSKeyFile == "" {
				logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
			} else {
				if err := httpServer.ListenAndServeTLS(app.TLSCertFile, app.TLSKeyFile); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
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

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

func initDraftStore(ctx context.Context) repository.IDraftStore {
	rc := configuration.C.RedisClient
	if rc.Host == "" {
		logger.GetLogger().Info("Redis not configured; using in-memory draft store")
		return draftstore.NewMemoryStore()
	}
	redisClient, err := cache.NewCache(ctx, fmt.Sprintf("%s:%s", rc.Host, rc.Port), rc.Username, rc.Password)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available; using in-memory draft store")
		return draftstore.NewMemoryStore()
	}
	logger.GetLogger().Info("Redis client initialized successfully.")
	return draftstore.NewRedisStore(redisClient)
}
