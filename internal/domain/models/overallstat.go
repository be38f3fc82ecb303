// internal/domain/models/overallstat.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OverallStat is the precomputed sales summary for one calendar year.
//
// Documents are written by an external process; this service only reads
// them. More than one document per year is tolerated: readers pick the most
// recently updated one.
type OverallStat struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Year                 int                `bson:"year" json:"year"`
	TotalCustomers       int64              `bson:"totalCustomers" json:"totalCustomers"`
	YearlySalesTotal     float64            `bson:"yearlySalesTotal" json:"yearlySalesTotal"`
	YearlyTotalSoldUnits int64              `bson:"yearlyTotalSoldUnits" json:"yearlyTotalSoldUnits"`
	MonthlyData          []MonthlyStat      `bson:"monthlyData" json:"monthlyData"`
	DailyData            []DailyStat        `bson:"dailyData" json:"dailyData"`
	SalesByCategory      map[string]float64 `bson:"salesByCategory" json:"salesByCategory"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MonthlyStat is one entry of OverallStat.MonthlyData.
// Month holds the full English month name ("November").
type MonthlyStat struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Month      string             `bson:"month" json:"month"`
	TotalSales float64            `bson:"totalSales" json:"totalSales"`
	TotalUnits int64              `bson:"totalUnits" json:"totalUnits"`
}

// DailyStat is one entry of OverallStat.DailyData.
// Date is an ISO calendar date ("2021-11-15").
type DailyStat struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Date       string             `bson:"date" json:"date"`
	TotalSales float64            `bson:"totalSales" json:"totalSales"`
	TotalUnits int64              `bson:"totalUnits" json:"totalUnits"`
}

// FindMonth returns the first monthly entry whose month equals name.
func (s *OverallStat) FindMonth(name string) (MonthlyStat, bool) {
	for _, m := range s.MonthlyData {
		if m.Month == name {
			return m, true
		}
	}
	return MonthlyStat{}, false
}

// FindDay returns the first daily entry whose date equals date.
func (s *OverallStat) FindDay(date string) (DailyStat, bool) {
	for _, d := range s.DailyData {
		if d.Date == date {
			return d, true
		}
	}
	return DailyStat{}, false
}
