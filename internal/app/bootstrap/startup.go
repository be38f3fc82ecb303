// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/statdeck/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and index setup are complete,
// but before the HTTP handler is built.
//
// It applies TIMEOUT_* overrides and records which reference date the
// dashboard will use.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		cur := timeouts.Current()
		logger.Info("timeouts overridden from environment",
			zap.Int("count", n),
			zap.Duration("ping", cur.Ping),
			zap.Duration("short", cur.Short),
			zap.Duration("medium", cur.Medium),
		)
	}

	if appCfg.DashboardDate != "" {
		logger.Info("dashboard pinned to fixed reference date", zap.String("dashboard_date", appCfg.DashboardDate))
	} else {
		logger.Info("dashboard follows the clock (UTC)")
	}
	if appCfg.LegacyErrors {
		logger.Warn("legacy error responses enabled: all API failures return 404")
	}

	return nil
}
