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

// Serves the payment pages only: no catalog, no prediction.
func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, api.Options{}); err != nil {
		log.Fatal().Err(err).Msg("checkout stopped")
	}
}
