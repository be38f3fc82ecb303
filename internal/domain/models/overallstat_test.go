package models

import "testing"

func TestOverallStat_FindMonth(t *testing.T) {
	s := OverallStat{
		MonthlyData: []MonthlyStat{
			{Month: "October", TotalSales: 100, TotalUnits: 10},
			{Month: "November", TotalSales: 200, TotalUnits: 20},
			{Month: "November", TotalSales: 999, TotalUnits: 99},
		},
	}

	tests := []struct {
		name      string
		month     string
		wantOK    bool
		wantSales float64
	}{
		{"present", "October", true, 100},
		{"first match wins", "November", true, 200},
		{"absent", "December", false, 0},
		{"case sensitive", "november", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.FindMonth(tt.month)
			if ok != tt.wantOK {
				t.Fatalf("FindMonth(%q) ok = %v, want %v", tt.month, ok, tt.wantOK)
			}
			if got.TotalSales != tt.wantSales {
				t.Errorf("FindMonth(%q) TotalSales = %v, want %v", tt.month, got.TotalSales, tt.wantSales)
			}
		})
	}
}

func TestOverallStat_FindDay(t *testing.T) {
	s := OverallStat{
		DailyData: []DailyStat{
			{Date: "2021-11-14", TotalSales: 1},
			{Date: "2021-11-15", TotalSales: 2},
		},
	}

	got, ok := s.FindDay("2021-11-15")
	if !ok {
		t.Fatal("FindDay(2021-11-15) not found")
	}
	if got.TotalSales != 2 {
		t.Errorf("FindDay TotalSales = %v, want 2", got.TotalSales)
	}

	if _, ok := s.FindDay("2021-11-16"); ok {
		t.Error("FindDay(2021-11-16) should not match")
	}
}

func TestOverallStat_FindOnEmpty(t *testing.T) {
	var s OverallStat
	if _, ok := s.FindMonth("November"); ok {
		t.Error("FindMonth on empty stat should not match")
	}
	if _, ok := s.FindDay("2021-11-15"); ok {
		t.Error("FindDay on empty stat should not match")
	}
}
