// Package general serves the read-only user and dashboard endpoints.
//
// Endpoints:
//   - GET /general/user/{id}  - one user by ObjectID
//   - GET /general/dashboard  - yearly totals, this month, today, recent transactions
//
// The dashboard is evaluated against a reference date: ?date=YYYY-MM-DD if
// given, else the configured dashboard date, else today (UTC).
package general

import (
	"errors"
	"fmt"
	"net/http"

	errorsfeature "github.com/dalemusser/statdeck/internal/app/features/errors"
	transactionstore "github.com/dalemusser/statdeck/internal/app/store/transactions"
	userstore "github.com/dalemusser/statdeck/internal/app/store/users"
	"github.com/dalemusser/statdeck/internal/app/system/apierr"
	"github.com/dalemusser/statdeck/internal/app/system/jsonutil"
	"github.com/dalemusser/statdeck/internal/app/system/refdate"
	"github.com/dalemusser/statdeck/internal/app/system/timeouts"
	"github.com/dalemusser/statdeck/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options tunes handler behavior.
type Options struct {
	// RecentLimit caps recentTransactions. Zero means transactionstore.DefaultRecentLimit.
	RecentLimit int64
	// LegacyErrors restores the blanket 404 error contract and the
	// 200-with-null response for unknown users.
	LegacyErrors bool
}

// Handler handles the general API requests.
type Handler struct {
	users    UserGetter
	stats    StatsGetter
	txns     TransactionLister
	resolver *refdate.Resolver
	opts     Options
	errs     apierr.Responder
	logger   *zap.Logger
}

// NewHandler creates a new general handler.
func NewHandler(
	users UserGetter,
	stats StatsGetter,
	txns TransactionLister,
	resolver *refdate.Resolver,
	opts Options,
	errLog *errorsfeature.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = transactionstore.DefaultRecentLimit
	}
	return &Handler{
		users:    users,
		stats:    stats,
		txns:     txns,
		resolver: resolver,
		opts:     opts,
		errs:     apierr.Responder{Legacy: opts.LegacyErrors, Log: errLog},
		logger:   logger,
	}
}

// GetUser handles GET /general/user/{id}.
//
// Response (200 OK): the user document. Password hashes are never included.
//
//	{"_id": "63701cc1f03239c72c00017f", "name": "Konstantine", "email": "...", "role": "superadmin", ...}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "general.user")
	defer cancel()

	user, err := h.users.GetByID(ctx, id)
	if err != nil {
		if h.opts.LegacyErrors && errors.Is(err, userstore.ErrNotFound) {
			jsonutil.OK(w, nil)
			return
		}
		h.errs.Write(w, r, err, "failed to load user")
		return
	}

	h.logger.Debug("user loaded", zap.String("user_id", id))
	jsonutil.OK(w, user)
}

// GetDashboard handles GET /general/dashboard.
//
// The transactions and yearly statistics are fetched concurrently; the
// first failure cancels the other query.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ref, err := h.resolver.Resolve(query.Get(r, "date"))
	if err != nil {
		h.errs.Write(w, r, err, "invalid reference date")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.logger, "general.dashboard")
	defer cancel()

	var (
		stat *models.OverallStat
		txns []models.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txns, err = h.txns.Recent(gctx, h.opts.RecentLimit)
		if err != nil {
			return fmt.Errorf("recent transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stat, err = h.stats.GetByYear(gctx, ref.Year)
		if err != nil {
			return fmt.Errorf("overall stats: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		h.errs.Write(w, r, err, "failed to load dashboard")
		return
	}

	h.logger.Debug("dashboard built",
		zap.String("reference_date", ref.Date),
		zap.Int("transactions", len(txns)),
	)
	jsonutil.OK(w, BuildDashboard(stat, txns, ref))
}
