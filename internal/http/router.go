package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/product-catalog/internal/antiforgery"
	_ "github.com/rogerio-castellano/product-catalog/internal/docs"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Protector *antiforgery.Protector
	Limiter   *rl.Limiter
	Logger    *zap.Logger
	// Health reports whether the store is reachable; nil means always healthy.
	Health func(ctx context.Context) error
}

func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/Products", http.StatusFound)
	})
	r.Get("/healthz", healthHandler(cfg.Health))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	limit := func(next http.Handler) http.Handler { return next }
	if cfg.Limiter != nil {
		limit = cfg.Limiter.Middleware
	}

	r.Route("/Products", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(cfg.Protector.Middleware)

			r.Get("/", handlers.ListProductsHandler)
			r.Get("/Index", handlers.ListProductsHandler)
			r.Get("/Details", handlers.ProductDetailsHandler)
			r.Get("/Details/{id}", handlers.ProductDetailsHandler)
			r.Get("/Create", handlers.CreateProductFormHandler)
			r.Get("/Edit", handlers.EditProductFormHandler)
			r.Get("/Edit/{id}", handlers.EditProductFormHandler)
			r.Get("/Delete", handlers.DeleteProductConfirmHandler)
			r.Get("/Delete/{id}", handlers.DeleteProductConfirmHandler)
			r.Get("/SearchProducts", handlers.SearchProductsHandler)
		})

		// limited before the token check, so forged posts count too
		r.Group(func(r chi.Router) {
			r.Use(limit, cfg.Protector.Middleware)

			r.Post("/Create", handlers.CreateProductHandler)
			r.Post("/Edit", handlers.EditProductHandler)
			r.Post("/Edit/{id}", handlers.EditProductHandler)
			r.Post("/Delete", handlers.DeleteProductHandler)
			r.Post("/Delete/{id}", handlers.DeleteProductHandler)
		})
	})

	return r
}

func healthHandler(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}
}
