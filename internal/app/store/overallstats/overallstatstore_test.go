package overallstatstore

import (
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/statdeck/internal/domain/models"
	"github.com/dalemusser/statdeck/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_GetByYear(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	docs := []any{
		models.OverallStat{ID: primitive.NewObjectID(), Year: 2020, TotalCustomers: 10, UpdatedAt: now},
		models.OverallStat{
			ID:             primitive.NewObjectID(),
			Year:           2021,
			TotalCustomers: 9035,
			MonthlyData:    []models.MonthlyStat{{Month: "November", TotalSales: 31201, TotalUnits: 1098}},
			DailyData:      []models.DailyStat{{Date: "2021-11-15", TotalSales: 1012, TotalUnits: 30}},
			SalesByCategory: map[string]float64{
				"shoes": 6515,
			},
			UpdatedAt: now,
		},
	}
	if _, err := db.Collection(CollectionName).InsertMany(ctx, docs); err != nil {
		t.Fatalf("insert stats: %v", err)
	}

	got, err := store.GetByYear(ctx, 2021)
	if err != nil {
		t.Fatalf("GetByYear() error = %v", err)
	}
	if got.TotalCustomers != 9035 {
		t.Errorf("TotalCustomers = %d, want 9035", got.TotalCustomers)
	}
	if len(got.MonthlyData) != 1 || got.MonthlyData[0].Month != "November" {
		t.Errorf("MonthlyData = %+v, want one November entry", got.MonthlyData)
	}
	if got.SalesByCategory["shoes"] != 6515 {
		t.Errorf("SalesByCategory[shoes] = %v, want 6515", got.SalesByCategory["shoes"])
	}
}

func TestStore_GetByYear_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByYear(ctx, 1999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByYear() error = %v, want ErrNotFound", err)
	}
}

func TestStore_GetByYear_MostRecentWins(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	older := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)

	// Insert the newer document first so natural order would pick the wrong one.
	docs := []any{
		models.OverallStat{ID: primitive.NewObjectID(), Year: 2021, TotalCustomers: 2, UpdatedAt: newer},
		models.OverallStat{ID: primitive.NewObjectID(), Year: 2021, TotalCustomers: 1, UpdatedAt: older},
	}
	if _, err := db.Collection(CollectionName).InsertMany(ctx, docs); err != nil {
		t.Fatalf("insert stats: %v", err)
	}

	got, err := store.GetByYear(ctx, 2021)
	if err != nil {
		t.Fatalf("GetByYear() error = %v", err)
	}
	if got.TotalCustomers != 2 {
		t.Errorf("GetByYear() picked TotalCustomers = %d, want 2 (most recently updated)", got.TotalCustomers)
	}
}
