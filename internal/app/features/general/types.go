package general

import (
	"context"

	"github.com/dalemusser/statdeck/internal/domain/models"
)

// UserGetter loads one user. *userstore.Store satisfies it.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// StatsGetter loads the statistics for one year. *overallstatstore.Store satisfies it.
type StatsGetter interface {
	GetByYear(ctx context.Context, year int) (*models.OverallStat, error)
}

// TransactionLister lists the newest transactions. *transactionstore.Store satisfies it.
type TransactionLister interface {
	Recent(ctx context.Context, limit int64) ([]models.Transaction, error)
}

// Dashboard is the response body of GET /general/dashboard.
//
// ThisMonthStats and TodayStats are null when the yearly document has no
// entry for the reference month or day.
type Dashboard struct {
	TotalCustomers       int64                `json:"totalCustomers"`
	YearlyTotalSoldUnits int64                `json:"yearlyTotalSoldUnits"`
	YearlySalesTotal     float64              `json:"yearlySalesTotal"`
	MonthlyData          []models.MonthlyStat `json:"monthlyData"`
	SalesByCategory      map[string]float64   `json:"salesByCategory"`
	ThisMonthStats       *models.MonthlyStat  `json:"thisMonthStats"`
	TodayStats           *models.DailyStat    `json:"todayStats"`
	RecentTransactions   []models.Transaction `json:"recentTransactions"`
}
