package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"postpilot/internal/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}

	app, err := di.InitializeApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := app.Mongo.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}
	cancel()

	if err := app.Scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	app.Log.Info().Msg("publishing engine running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := app.Scheduler.Stop(shutdownCtx); err != nil {
		app.Log.Error().Err(err).Msg("scheduler did not drain cleanly")
	}
	app.Notifs.Shutdown()
	if err := app.Mongo.Close(shutdownCtx); err != nil {
		app.Log.Error().Err(err).Msg("error closing mongo connection")
	}
	app.Log.Info().Msg("stopped")
}
