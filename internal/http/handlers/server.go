package handlers

import (
	"github.com/rogerio-castellano/storefront/internal/payment"
	"github.com/rogerio-castellano/storefront/internal/predict"
	repo "github.com/rogerio-castellano/storefront/internal/repo"
)

// Server is the application context shared by every handler. It is built
// once at startup and never mutated afterwards.
type Server struct {
	productRepo   repo.ProductRepository
	metricsRepo   repo.MetricsRepository
	predictor     predict.Predictor
	gateway       payment.Gateway
	razorpayKeyID string
	catalog       bool
}

type Deps struct {
	Products      repo.ProductRepository
	Metrics       repo.MetricsRepository
	Predictor     predict.Predictor
	Gateway       payment.Gateway
	RazorpayKeyID string
}

// NewServer builds the application context. Metrics falls back to a scan over
// Products when unset.
func NewServer(d Deps) *Server {
	if d.Metrics == nil && d.Products != nil {
		d.Metrics = repo.NewInMemoryMetricsRepository(d.Products)
	}
	return &Server{
		productRepo:   d.Products,
		metricsRepo:   d.Metrics,
		predictor:     d.Predictor,
		gateway:       d.Gateway,
		razorpayKeyID: d.RazorpayKeyID,
		catalog:       d.Products != nil,
	}
}
