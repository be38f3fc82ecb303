// internal/app/store/transactions/transactionstore.go
package transactionstore

import (
	"context"

	"github.com/dalemusser/statdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection for transactions.
const CollectionName = "transactions"

// DefaultRecentLimit is the number of transactions shown on the dashboard.
const DefaultRecentLimit = 50

// Store provides read access to transactions.
type Store struct {
	c *mongo.Collection
}

// New creates a new transaction store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// Recent returns up to limit transactions, newest first.
// A non-positive limit falls back to DefaultRecentLimit.
func (s *Store) Recent(ctx context.Context, limit int64) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	txns := make([]models.Transaction, 0, limit)
	if err := cur.All(ctx, &txns); err != nil {
		return nil, err
	}
	if txns == nil {
		txns = []models.Transaction{}
	}
	return txns, nil
}
