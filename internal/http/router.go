package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/storefront/docs"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/logging"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Options selects which parts of the storefront a binary serves.
type Options struct {
	Catalog    bool
	Prediction bool
	// Limiter guards the order and predict endpoints when set. /verify stays
	// open so a signed payment always completes.
	Limiter *rl.Limiter
}

func NewRouter(s *handlers.Server, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(logging.RequestLogger)
	r.Use(middleware.Recoverer)

	limited := func(h http.HandlerFunc) http.Handler {
		if opts.Limiter == nil {
			return h
		}
		return opts.Limiter.Middleware(h)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Get("/", s.HomeHandler)
	r.Get("/order", s.CheckoutPageHandler)
	r.Method(http.MethodPost, "/order", limited(s.CreateOrderHandler))
	r.Get("/product", s.ProductPageHandler)
	r.Get("/contact", s.ContactHandler)
	r.Post("/verify", s.VerifyPaymentHandler)
	r.Get("/success", s.SuccessHandler)

	if opts.Catalog {
		r.Get("/add", s.AddProductFormHandler)
		r.Post("/add", s.AddProductHandler)
		r.Get("/products", s.ListProductsPageHandler)
		r.Get("/edit/{id}", s.EditProductFormHandler)
		r.Post("/edit/{id}", s.EditProductHandler)
		r.Get("/delete/{id}", s.DeleteProductPageHandler)

		r.Route("/api/products", func(r chi.Router) {
			r.Get("/", s.GetProductsHandler)
			r.Post("/", s.CreateProductHandler)
			r.Post("/import", s.ImportProductsHandler)
			r.Get("/{id}", s.GetProductByIDHandler)
			r.Put("/{id}", s.UpdateProductHandler)
			r.Delete("/{id}", s.DeleteProductHandler)
		})
		r.Get("/api/metrics", s.GetCatalogMetricsHandler)
	}

	if opts.Prediction {
		r.Method(http.MethodPost, "/predict", limited(s.PredictHandler))
	}

	return r
}
