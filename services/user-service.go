package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/manku13/Task-Manager-BackEnd/logging"
	"github.com/manku13/Task-Manager-BackEnd/models"
	"github.com/manku13/Task-Manager-BackEnd/utils"
)

// UserStore is the slice of the document store the user repository needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context) ([]models.User, error)
}

// UserService owns identity records and credential verification.
type UserService struct {
	users UserStore
	tasks TaskStore
	jwt   *JWTService
}

func NewUserService(users UserStore, tasks TaskStore, jwt *JWTService) *UserService {
	return &UserService{users: users, tasks: tasks, jwt: jwt}
}

// Register creates the identity and its companion empty task collection,
// then issues a token.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", models.ErrConflict
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, "", err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Roles:    []string{"user"},
		Active:   true,
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, "", models.ErrConflict
		}
		return nil, "", err
	}
	user.ID = id

	if err := s.tasks.Save(ctx, &models.TaskCollection{UserEmail: email, Tasks: []models.Task{}}); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(id.Hex())
	if err != nil {
		return nil, "", err
	}

	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: User %s registered", username)
	return user, token, nil
}

// Authenticate verifies the credential against the stored hash. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", models.ErrUnauthorized
		}
		return nil, "", err
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, "", models.ErrUnauthorized
	}

	token, err := s.jwt.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetAllUsers returns every identity with the credential field stripped.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, models.ErrNotFound
	}
	for i := range users {
		users[i] = users[i].Sanitize()
	}
	return users, nil
}

// CreateUser is the administrative create; roles must be non-empty.
func (s *UserService) CreateUser(ctx context.Context, username, email, password string, roles []string) (*models.User, error) {
	if username == "" || email == "" || password == "" || len(roles) == 0 {
		return nil, fmt.Errorf("%w: all fields are required", models.ErrValidation)
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, models.ErrUsernameTaken
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, models.ErrEmailTaken
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Roles:    roles,
		Active:   true,
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	logging.Logger.Infof("Event ID: USER_CREATED, Description: New user %s created", username)
	return user, nil
}

// UpdateUser rewrites username, roles and the active flag. The password is
// re-hashed only when a new one is supplied; omission leaves the stored
// credential untouched.
func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, username string, roles []string, active bool, password string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	duplicate, err := s.users.FindByUsername(ctx, username)
	if err == nil && duplicate.ID != id {
		return nil, models.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	user.Username = username
	user.Roles = roles
	user.Active = active

	if password != "" {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the identity record only. The user's task collection
// is left in place; whether it should cascade is a product decision.
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: USER_DELETED, Description: User %s deleted", user.Username)
	return user, nil
}
