package general

import (
	"github.com/dalemusser/statdeck/internal/app/system/refdate"
	"github.com/dalemusser/statdeck/internal/domain/models"
)

// BuildDashboard reshapes one yearly document and the recent transactions
// into the dashboard snapshot for ref. It does no I/O.
func BuildDashboard(stat *models.OverallStat, txns []models.Transaction, ref refdate.Point) Dashboard {
	d := Dashboard{
		TotalCustomers:       stat.TotalCustomers,
		YearlyTotalSoldUnits: stat.YearlyTotalSoldUnits,
		YearlySalesTotal:     stat.YearlySalesTotal,
		MonthlyData:          stat.MonthlyData,
		SalesByCategory:      stat.SalesByCategory,
		RecentTransactions:   txns,
	}

	if m, ok := stat.FindMonth(ref.Month); ok {
		d.ThisMonthStats = &m
	}
	if day, ok := stat.FindDay(ref.Date); ok {
		d.TodayStats = &day
	}

	// Clients index into these; keep them arrays/objects, never null.
	if d.MonthlyData == nil {
		d.MonthlyData = []models.MonthlyStat{}
	}
	if d.SalesByCategory == nil {
		d.SalesByCategory = map[string]float64{}
	}
	if d.RecentTransactions == nil {
		d.RecentTransactions = []models.Transaction{}
	}
	return d
}
