// Package sales serves the yearly sales overview.
//
// Endpoints:
//   - GET /sales/sales - the overall statistics document for the reference year
package sales

import (
	"context"
	"net/http"

	errorsfeature "github.com/dalemusser/statdeck/internal/app/features/errors"
	"github.com/dalemusser/statdeck/internal/app/system/apierr"
	"github.com/dalemusser/statdeck/internal/app/system/jsonutil"
	"github.com/dalemusser/statdeck/internal/app/system/refdate"
	"github.com/dalemusser/statdeck/internal/app/system/timeouts"
	"github.com/dalemusser/statdeck/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// StatsGetter loads the statistics for one year.
type StatsGetter interface {
	GetByYear(ctx context.Context, year int) (*models.OverallStat, error)
}

// Handler handles sales requests.
type Handler struct {
	stats    StatsGetter
	resolver *refdate.Resolver
	errs     apierr.Responder
	logger   *zap.Logger
}

// NewHandler creates a new sales handler.
func NewHandler(stats StatsGetter, resolver *refdate.Resolver, legacyErrors bool, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		stats:    stats,
		resolver: resolver,
		errs:     apierr.Responder{Legacy: legacyErrors, Log: errLog},
		logger:   logger,
	}
}

// GetOverall handles GET /sales/sales.
// The year comes from ?date=YYYY-MM-DD, else the configured date, else today.
func (h *Handler) GetOverall(w http.ResponseWriter, r *http.Request) {
	ref, err := h.resolver.Resolve(query.Get(r, "date"))
	if err != nil {
		h.errs.Write(w, r, err, "invalid reference date")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "sales.overall")
	defer cancel()

	stat, err := h.stats.GetByYear(ctx, ref.Year)
	if err != nil {
		h.errs.Write(w, r, err, "failed to load overall stats")
		return
	}
	if stat.MonthlyData == nil {
		stat.MonthlyData = []models.MonthlyStat{}
	}
	if stat.DailyData == nil {
		stat.DailyData = []models.DailyStat{}
	}

	jsonutil.OK(w, stat)
}
