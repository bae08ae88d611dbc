package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/manku13/Task-Manager-BackEnd/models"
)

// TaskStore persists TaskCollection documents. Every round trip goes
// through the shared circuit breaker.
type TaskStore struct {
	coll    *mongo.Collection
	breaker *gobreaker.CircuitBreaker
}

func (s *TaskStore) FindByEmail(ctx context.Context, email string) (*models.TaskCollection, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		var tc models.TaskCollection
		err := s.coll.FindOne(ctx, bson.M{"userEmail": email}).Decode(&tc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to find task collection: %w", err)
		}
		return &tc, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.TaskCollection), nil
}

// Save writes the whole document back, creating it when absent. This is a
// document-granularity last-write-wins upsert keyed by userEmail.
func (s *TaskStore) Save(ctx context.Context, tc *models.TaskCollection) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		_, err := s.coll.ReplaceOne(ctx,
			bson.M{"userEmail": tc.UserEmail},
			tc,
			options.Replace().SetUpsert(true),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to save task collection: %w", err)
		}
		return nil, nil
	})
	return err
}
