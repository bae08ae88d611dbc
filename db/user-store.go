package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/manku13/Task-Manager-BackEnd/models"
)

// UserStore persists User identity records.
type UserStore struct {
	coll    *mongo.Collection
	breaker *gobreaker.CircuitBreaker
}

func (s *UserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		var user models.User
		err := s.coll.FindOne(ctx, filter).Decode(&user)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
		return &user, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.User), nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *UserStore) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		res, err := s.coll.InsertOne(ctx, user)
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrConflict
		}
		if err != nil {
			return nil, fmt.Errorf("failed to insert user: %w", err)
		}
		return res.InsertedID.(primitive.ObjectID), nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.(primitive.ObjectID), nil
}

func (s *UserStore) Save(ctx context.Context, user *models.User) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
		if err != nil {
			return nil, fmt.Errorf("failed to save user: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, models.ErrNotFound
		}
		return nil, nil
	})
	return err
}

func (s *UserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return nil, fmt.Errorf("failed to delete user: %w", err)
		}
		if res.DeletedCount == 0 {
			return nil, models.ErrNotFound
		}
		return nil, nil
	})
	return err
}

func (s *UserStore) FindAll(ctx context.Context) ([]models.User, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		cursor, err := s.coll.Find(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve users: %w", err)
		}
		defer cursor.Close(ctx)

		var users []models.User
		if err := cursor.All(ctx, &users); err != nil {
			return nil, fmt.Errorf("failed to decode users: %w", err)
		}
		return users, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.User), nil
}
