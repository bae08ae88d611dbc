package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/manku13/Task-Manager-BackEnd/middleware"
	"github.com/manku13/Task-Manager-BackEnd/models"
	"github.com/manku13/Task-Manager-BackEnd/services"
)

type fakeTaskStore struct {
	collections map[string]*models.TaskCollection
}

func (f *fakeTaskStore) FindByEmail(_ context.Context, email string) (*models.TaskCollection, error) {
	tc, ok := f.collections[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *tc
	cp.Tasks = make([]models.Task, len(tc.Tasks))
	copy(cp.Tasks, tc.Tasks)
	return &cp, nil
}

func (f *fakeTaskStore) Save(_ context.Context, tc *models.TaskCollection) error {
	cp := *tc
	cp.Tasks = make([]models.Task, len(tc.Tasks))
	copy(cp.Tasks, tc.Tasks)
	f.collections[tc.UserEmail] = &cp
	return nil
}

type fakeUserStore struct {
	users map[primitive.ObjectID]models.User
}

func (f *fakeUserStore) findBy(match func(models.User) bool) (*models.User, error) {
	for _, u := range f.users {
		if match(u) {
			cp := u
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return f.findBy(func(u models.User) bool { return u.Email == email })
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return f.findBy(func(u models.User) bool { return u.Username == username })
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	for _, u := range f.users {
		if u.Email == user.Email || u.Username == user.Username {
			return primitive.NilObjectID, models.ErrConflict
		}
	}
	id := primitive.NewObjectID()
	cp := *user
	cp.ID = id
	f.users[id] = cp
	return id, nil
}

func (f *fakeUserStore) Save(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return models.ErrNotFound
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.users[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type testEnv struct {
	router *mux.Router
	tasks  *fakeTaskStore
	users  *fakeUserStore
	jwt    *services.JWTService
}

func newTestEnv() *testEnv {
	tasks := &fakeTaskStore{collections: make(map[string]*models.TaskCollection)}
	users := &fakeUserStore{users: make(map[primitive.ObjectID]models.User)}

	jwtService := services.NewJWTService("test-secret")
	taskService := services.NewTaskService(tasks)
	userService := services.NewUserService(users, tasks, jwtService)

	router := NewRouter(
		&AuthHandler{UserService: userService},
		NewTaskHandler(taskService),
		&UserHandler{UserService: userService},
		jwtService,
		middleware.NewLoginLimiter(time.Minute, 100),
	)
	return &testEnv{router: router, tasks: tasks, users: users, jwt: jwtService}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) authHeader(t *testing.T) map[string]string {
	t.Helper()
	token, err := e.jwt.GenerateToken(primitive.NewObjectID().Hex())
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}
