package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"givehub/internal/adapter/repo"
	"givehub/internal/http/handlers"
	"givehub/internal/http/httpapi"
	"givehub/internal/infra"
	"givehub/internal/paystack"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	client, db, err := infra.NewMongo(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	logger.Info().Msg("MongoDB connected")

	verifier := paystack.New(paystack.Options{
		BaseURL:   cfg.PaystackBaseURL,
		SecretKey: cfg.PaystackSecretKey,
	})

	app := handlers.NewApp(
		repo.NewSubscriberRepository(db),
		repo.NewContactRepository(db),
		repo.NewDonationRepository(db),
		verifier,
		cfg.StaticDir,
		logger,
	)

	router := httpapi.NewRouter(app, logger, cfg.CORSAllowedOrigins)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		logger.Info().Msgf("Contact API: http://localhost:%s/api/contact", cfg.Port)
		logger.Info().Msgf("Newsletter API: http://localhost:%s/api/newsletter", cfg.Port)
		logger.Info().Msgf("Donation API: http://localhost:%s/api/donate", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
