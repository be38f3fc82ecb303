package general

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	overallstatstore "github.com/dalemusser/statdeck/internal/app/store/overallstats"
	userstore "github.com/dalemusser/statdeck/internal/app/store/users"
	"github.com/dalemusser/statdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUsers struct {
	users map[string]models.User
	err   error
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, userstore.ErrInvalidID
	}
	u, ok := f.users[id]
	if !ok {
		return nil, userstore.ErrNotFound
	}
	return &u, nil
}

type fakeStats struct {
	byYear map[int]models.OverallStat
	err    error
	calls  atomic.Int32
}

func (f *fakeStats) GetByYear(ctx context.Context, year int) (*models.OverallStat, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.byYear[year]
	if !ok {
		return nil, fmt.Errorf("%w %d", overallstatstore.ErrNotFound, year)
	}
	return &s, nil
}

type fakeTxns struct {
	all      []models.Transaction
	err      error
	gotLimit atomic.Int64
}

func (f *fakeTxns) Recent(ctx context.Context, limit int64) ([]models.Transaction, error) {
	f.gotLimit.Store(limit)
	if f.err != nil {
		return nil, f.err
	}
	sorted := append([]models.Transaction(nil), f.all...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if int64(len(sorted)) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}
