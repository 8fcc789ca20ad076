package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stocklight/stocklight-backend/api/controllers"
	"github.com/stocklight/stocklight-backend/api/middleware"
	"github.com/stocklight/stocklight-backend/internal/dashboard"
	"github.com/stocklight/stocklight-backend/internal/inventory"
	"github.com/stocklight/stocklight-backend/internal/stock"
	"github.com/stocklight/stocklight-backend/pkg/config"
	"github.com/stocklight/stocklight-backend/pkg/db"
	"github.com/stocklight/stocklight-backend/pkg/logger"
	"github.com/stocklight/stocklight-backend/pkg/metrics"
	"github.com/stocklight/stocklight-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	inventoryService inventory.Service,
	stockService stock.Service,
	dashboardService dashboard.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	writePolicy := middleware.NewWriteRateLimitPolicy(
		"write",
		cfg.RateLimit.WriteWindow,
		cfg.RateLimit.WriteIPLimit,
	)
	throttled := middleware.WriteRateLimit(writePolicy, redisClient, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", controllers.InventoryList(inventoryService, logg))
			r.With(throttled).Post("/", controllers.InventoryCreate(inventoryService, logg))
			r.Get("/{itemId}", controllers.InventoryGet(inventoryService, logg))
			r.With(throttled).Delete("/{itemId}", controllers.InventoryDelete(inventoryService, logg))
		})

		r.Route("/stock", func(r chi.Router) {
			r.With(throttled).Post("/in", controllers.StockIn(stockService, logg))
			r.With(throttled).Post("/out", controllers.StockOut(stockService, logg))
			r.Get("/ledger", controllers.StockLedger(stockService, logg))
		})

		r.Get("/dashboard/summary", controllers.DashboardSummary(dashboardService, logg))
	})

	return r
}
