package bootstrap

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func validConfig() AppConfig {
	return AppConfig{
		MongoURI:                "mongodb://localhost:27017",
		MongoDatabase:           "statdeck",
		RecentTransactionsLimit: 50,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *AppConfig) {}},
		{name: "fixed date", mutate: func(c *AppConfig) { c.DashboardDate = "2021-11-15" }},
		{name: "limit lower bound", mutate: func(c *AppConfig) { c.RecentTransactionsLimit = 1 }},
		{name: "limit upper bound", mutate: func(c *AppConfig) { c.RecentTransactionsLimit = 500 }},
		{name: "bad uri", mutate: func(c *AppConfig) { c.MongoURI = "postgres://localhost" }, wantErr: "invalid MongoDB URI"},
		{name: "empty database", mutate: func(c *AppConfig) { c.MongoDatabase = "" }, wantErr: "mongo_database"},
		{name: "bad date", mutate: func(c *AppConfig) { c.DashboardDate = "November 2021" }, wantErr: "invalid dashboard_date"},
		{name: "impossible date", mutate: func(c *AppConfig) { c.DashboardDate = "2021-02-30" }, wantErr: "invalid dashboard_date"},
		{name: "limit zero", mutate: func(c *AppConfig) { c.RecentTransactionsLimit = 0 }, wantErr: "recent_transactions_limit"},
		{name: "limit too large", mutate: func(c *AppConfig) { c.RecentTransactionsLimit = 501 }, wantErr: "recent_transactions_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := ValidateConfig(nil, cfg, zap.NewNop())

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateConfig() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateConfig() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateConfig() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}
