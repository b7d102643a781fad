package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rogerio-castellano/storefront/internal/app"
	"github.com/rogerio-castellano/storefront/internal/config"
	api "github.com/rogerio-castellano/storefront/internal/http"
	"github.com/rogerio-castellano/storefront/internal/logging"
	"github.com/rs/zerolog/log"
)

// @title Storefront API
// @version 1.0
// @description Checkout, catalog and price prediction endpoints.
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, api.Options{Catalog: true, Prediction: true}); err != nil {
		log.Fatal().Err(err).Msg("storefront stopped")
	}
}
