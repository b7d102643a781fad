// Package app wires configuration, storage, the payment gateway and the
// router into a running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rogerio-castellano/storefront/internal/config"
	"github.com/rogerio-castellano/storefront/internal/db"
	api "github.com/rogerio-castellano/storefront/internal/http"
	"github.com/rogerio-castellano/storefront/internal/http/ban"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/payment"
	"github.com/rogerio-castellano/storefront/internal/predict"
	"github.com/rogerio-castellano/storefront/internal/redissvc"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rs/zerolog/log"
)

const (
	shutdownTimeout = 10 * time.Second
	cleanupInterval = time.Minute
)

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config, opts api.Options) error {
	deps := handlers.Deps{
		Gateway:       payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret),
		RazorpayKeyID: cfg.Razorpay.KeyID,
	}
	if cfg.Razorpay.KeyID == "" || cfg.Razorpay.KeySecret == "" {
		log.Warn().Msg("Razorpay credentials are not set, gateway calls will fail")
	}

	if opts.Catalog {
		products, metrics, closeStore, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()
		deps.Products = products
		deps.Metrics = metrics
	}

	if opts.Prediction {
		model, err := predict.LoadModel(cfg.ModelPath)
		if err != nil {
			return fmt.Errorf("load model %s: %w", cfg.ModelPath, err)
		}
		deps.Predictor = model
	}

	store, closeBans, err := openBanStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeBans()

	guard := ban.NewGuard(store, cfg.RateLimit.BanStrikes, cfg.RateLimit.BanDuration)
	opts.Limiter = rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, guard)
	go opts.Limiter.StartVisitorCleanupLoop(ctx, cleanupInterval)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(handlers.NewServer(deps), opts),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Bool("catalog", opts.Catalog).
			Bool("prediction", opts.Prediction).Msg("server running")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(cfg *config.Config) (repo.ProductRepository, repo.MetricsRepository, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		log.Info().Msg("using in-memory product store")
		products := repo.NewInMemoryProductRepository()
		return products, repo.NewInMemoryMetricsRepository(products), func() {}, nil
	}

	database, err := db.Connect(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("connected to database")
	return repo.NewSQLProductRepository(database), repo.NewSQLMetricsRepository(database),
		func() { database.Close() }, nil
}

func openBanStore(ctx context.Context, cfg *config.Config) (ban.Store, func(), error) {
	if cfg.Redis.Addr == "" {
		return ban.NewMemoryStore(), func() {}, nil
	}

	rdb, err := redissvc.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to Redis: %w", err)
	}
	return ban.NewRedisStore(rdb), func() { rdb.Close() }, nil
}
