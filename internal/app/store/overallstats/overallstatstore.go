// internal/app/store/overallstats/overallstatstore.go
package overallstatstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/statdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection for yearly statistics.
const CollectionName = "overallstats"

// ErrNotFound is returned when no statistics exist for the requested year.
var ErrNotFound = errors.New("no statistics for year")

// Store provides read access to yearly statistics.
type Store struct {
	c *mongo.Collection
}

// New creates a new overall stats store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// GetByYear returns the statistics document for year.
// When several documents share a year the most recently updated one wins,
// with _id as the final tie-break.
func (s *Store) GetByYear(ctx context.Context, year int) (*models.OverallStat, error) {
	opts := options.FindOne().SetSort(bson.D{
		{Key: "updatedAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	var stat models.OverallStat
	if err := s.c.FindOne(ctx, bson.M{"year": year}, opts).Decode(&stat); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w %d", ErrNotFound, year)
		}
		return nil, err
	}
	return &stat, nil
}
