// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	errorsfeature "github.com/dalemusser/statdeck/internal/app/features/errors"
	generalfeature "github.com/dalemusser/statdeck/internal/app/features/general"
	healthfeature "github.com/dalemusser/statdeck/internal/app/features/health"
	salesfeature "github.com/dalemusser/statdeck/internal/app/features/sales"
	overallstatstore "github.com/dalemusser/statdeck/internal/app/store/overallstats"
	transactionstore "github.com/dalemusser/statdeck/internal/app/store/transactions"
	userstore "github.com/dalemusser/statdeck/internal/app/store/users"
	"github.com/dalemusser/statdeck/internal/app/system/refdate"
	"github.com/dalemusser/statdeck/internal/app/system/requestid"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// Routes:
//   - /general/user/{id}, /general/dashboard
//   - /sales/sales
//   - /health, /health/ready, /health/live, /ready, /readyz, /livez
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	resolver, err := refdate.NewResolver(appCfg.DashboardDate)
	if err != nil {
		logger.Error("reference date resolver init failed", zap.Error(err))
		return nil, err
	}

	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	users := userstore.New(deps.MongoDatabase)
	stats := overallstatstore.New(deps.MongoDatabase)
	txns := transactionstore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Request IDs: echoed in X-Request-ID and attached to error logs.
	r.Use(requestid.Middleware)

	// ─────────────────────────────────────────────────────────────────────────────
	// API
	// ─────────────────────────────────────────────────────────────────────────────

	generalHandler := generalfeature.NewHandler(users, stats, txns, resolver, generalfeature.Options{
		RecentLimit:  int64(appCfg.RecentTransactionsLimit),
		LegacyErrors: appCfg.LegacyErrors,
	}, errLog, logger)
	r.Mount("/general", generalfeature.Routes(generalHandler))

	salesHandler := salesfeature.NewHandler(stats, resolver, appCfg.LegacyErrors, errLog, logger)
	r.Mount("/sales", salesfeature.Routes(salesHandler))

	// Health endpoints
	healthHandler := healthfeature.NewHandler(deps.MongoClient, appCfg.MongoDatabase, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// JSON fallbacks for unmatched routes
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	return r, nil
}
