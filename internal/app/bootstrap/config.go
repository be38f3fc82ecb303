// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/statdeck/internal/app/system/refdate"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "STATDECK"

// Bounds for recent_transactions_limit.
const (
	MinRecentTransactions = 1
	MaxRecentTransactions = 500
)

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, dashboard_date, etc.
//   - Environment variables: STATDECK_MONGO_URI, STATDECK_DASHBOARD_DATE, etc.
//   - Command-line flags: --mongo_uri, --dashboard_date, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "statdeck", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Dashboard
	{Name: "dashboard_date", Default: "", Desc: "Fixed dashboard reference date YYYY-MM-DD (blank means today, UTC)"},
	{Name: "recent_transactions_limit", Default: 50, Desc: "Number of recent transactions on the dashboard (1-500)"},

	{Name: "legacy_errors", Default: false, Desc: "Answer every API failure with 404 and the raw error text"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config.yaml/json/toml,
// environment variables (WAFFLE_* for core, STATDECK_* for app) and flags
// with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		DashboardDate:           appValues.String("dashboard_date"),
		RecentTransactionsLimit: appValues.Int("recent_transactions_limit"),

		LegacyErrors: appValues.Bool("legacy_errors"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.MongoDatabase == "" {
		logger.Error("mongo_database is empty")
		return fmt.Errorf("mongo_database must not be empty")
	}

	if appCfg.DashboardDate != "" {
		if _, err := refdate.Parse(appCfg.DashboardDate); err != nil {
			logger.Error("invalid dashboard_date", zap.String("dashboard_date", appCfg.DashboardDate), zap.Error(err))
			return fmt.Errorf("invalid dashboard_date: %w", err)
		}
	}

	if n := appCfg.RecentTransactionsLimit; n < MinRecentTransactions || n > MaxRecentTransactions {
		logger.Error("recent_transactions_limit out of range", zap.Int("recent_transactions_limit", n))
		return fmt.Errorf("recent_transactions_limit must be between %d and %d, got %d",
			MinRecentTransactions, MaxRecentTransactions, n)
	}

	return nil
}
