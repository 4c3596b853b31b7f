package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/espressolab/storefront-backend/api/controllers"
	"github.com/espressolab/storefront-backend/api/middleware"
	"github.com/espressolab/storefront-backend/pkg/config"
	"github.com/espressolab/storefront-backend/pkg/logger"
	"github.com/espressolab/storefront-backend/pkg/redis"
)

const notificationsRateLimitPolicy = "notifications"

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	orderNotifier controllers.OrderNotifier,
	qcNotifier controllers.QCNotifier,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSAllowedOrigins),
	)

	// a nil *redis.Client must stay a nil interface for the probe and the limiter
	var redisPinger controllers.Pinger
	var rateStore middleware.RateLimitStore
	if redisClient != nil {
		redisPinger = redisClient
		rateStore = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisPinger))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	policy := middleware.NewRateLimitPolicy(notificationsRateLimitPolicy, cfg.RateLimit.Window, cfg.RateLimit.IPLimit)
	r.Route("/functions/v1", func(r chi.Router) {
		r.Use(
			middleware.CallerAuth(cfg.Auth, logg),
			middleware.RateLimit(policy, rateStore, logg),
		)
		r.Post("/send-order-notification", controllers.OrderNotification(orderNotifier, logg))
		r.Post("/send-qc-notification", controllers.QCNotification(qcNotifier, logg))
	})

	return r
}
