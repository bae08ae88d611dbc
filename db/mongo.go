package db

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/manku13/Task-Manager-BackEnd/logging"
	"github.com/manku13/Task-Manager-BackEnd/models"
)

// Store is the explicit handle to the document database. It is constructed
// once at startup and injected into the repositories; nothing imports a
// connection ambiently.
type Store struct {
	client  *mongo.Client
	db      *mongo.Database
	breaker *gobreaker.CircuitBreaker
}

func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "mongo-store",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		// NotFound and Conflict are answers, not store failures.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrConflict)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	return &Store{client: client, db: client.Database(dbName), breaker: breaker}, nil
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique keys the data model relies on: one task
// collection per userEmail, one user per email and per username.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := s.db.Collection("tasks").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userEmail", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = s.db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

func (s *Store) Tasks() *TaskStore {
	return &TaskStore{coll: s.db.Collection("tasks"), breaker: s.breaker}
}

func (s *Store) Users() *UserStore {
	return &UserStore{coll: s.db.Collection("users"), breaker: s.breaker}
}
