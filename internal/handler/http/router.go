package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/timursarsembai/crochet-shop/pkg/health"
	"github.com/timursarsembai/crochet-shop/pkg/middleware"
)

// RouterDeps carries everything the router mounts.
type RouterDeps struct {
	ServiceName string
	Logger      *slog.Logger
	CORS        middleware.CORSConfig

	Catalog    *CatalogHandler
	Cart       *CartHandler
	Wishlist   *WishlistHandler
	Checkout   *CheckoutHandler
	Navigation *NavigationHandler
	Inquiry    *InquiryHandler
	Health     *health.Handler
}

// NewRouter builds the storefront HTTP router with the full middleware chain.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.CORS(deps.CORS))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.Tracing(deps.ServiceName))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.PrometheusMetrics(deps.ServiceName))

	r.Get("/healthz", deps.Health.LivenessHandler())
	r.Get("/readyz", deps.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		deps.Catalog.RegisterRoutes(r)
		deps.Inquiry.RegisterRoutes(r)
		deps.Checkout.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(RequireSession)
			deps.Cart.RegisterRoutes(r)
			deps.Wishlist.RegisterRoutes(r)
			deps.Navigation.RegisterRoutes(r)
		})
	})

	return r
}
