package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/phuslu/log"

	"lottery-miniapp-client/internal/config"
	"lottery-miniapp-client/internal/handlers"
	"lottery-miniapp-client/internal/logger"
	"lottery-miniapp-client/internal/middleware"
	"lottery-miniapp-client/internal/services"
	"lottery-miniapp-client/internal/ui"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logg := logger.New(cfg.LogLevel, os.Stderr)
	if envErr != nil {
		logg.Info().Msg("no .env file found, using environment variables")
	}

	storage, err := openStorage(cfg)
	if err != nil {
		logg.Fatal().Err(err).Str("storage", cfg.Storage).Msg("failed to open session storage")
	}
	defer storage.Close()

	hub := handlers.NewWebSocketHub(logg)
	defer hub.Close()

	sessions := services.NewSessionStore(storage, logg)
	api := services.NewAPIClient(cfg.APIBaseURL, cfg.RequestTimeout)

	engine := services.NewInteractionEngine(api, sessions, hub, services.EngineOptions{
		Logger:                logg,
		NotificationDwell:     cfg.NotificationDwell,
		NotificationExit:      cfg.NotificationExit,
		LoginRedirectDelay:    cfg.LoginRedirectDelay,
		RegisterRedirectDelay: cfg.RegisterRedirectDelay,
	})
	defer engine.Close()

	if _, err := engine.Startup(context.Background()); err != nil {
		logg.Warn().Err(err).Msg("starting as guest")
	}

	clock := ui.NewClock(hub)
	if err := clock.Start(); err != nil {
		logg.Fatal().Err(err).Msg("failed to start clock")
	}
	defer clock.Stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logg))
	router.Use(middleware.CORS(cfg.AllowedOrigin))

	handlers.RegisterRoutes(
		router,
		handlers.NewUIHandler(engine, logg),
		handlers.NewWebSocketHandler(hub, cfg.AllowedOrigin, logg),
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	logg.Info().Str("port", cfg.Port).Str("api", cfg.APIBaseURL).Str("storage", cfg.Storage).Msg("bridge listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Error().Err(err).Msg("server closed")
		return
	}
	logg.Info().Msg("server closed")
}

func openStorage(cfg *config.Config) (services.Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return services.NewMemoryStorage(), nil
	case config.StorageRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return services.NewRedisStorage(ctx, cfg.RedisURL, cfg.RedisDB, cfg.ClientID)
	default:
		return services.NewFileStorage(cfg.StoragePath)
	}
}
