package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/manku13/Task-Manager-BackEnd/middleware"
	"github.com/manku13/Task-Manager-BackEnd/services"
)

// NewRouter builds the full route table. The task routes are mounted before
// the user-administration prefix so /api/users/tasks stays outside the
// token-protected subtree.
func NewRouter(auth *AuthHandler, tasks *TaskHandler, users *UserHandler, jwtService *services.JWTService, limiter *middleware.LoginLimiter) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(NotFound)

	authRoutes := r.PathPrefix("/api/auth").Subrouter()
	authRoutes.HandleFunc("/register", auth.Register).Methods(http.MethodPost)
	authRoutes.Handle("/login", limiter.Middleware(http.HandlerFunc(auth.Login))).Methods(http.MethodPost)

	taskRoutes := r.PathPrefix("/api/users/tasks").Subrouter()
	taskRoutes.HandleFunc("", tasks.GetTasks).Methods(http.MethodGet)
	taskRoutes.HandleFunc("", tasks.AddTask).Methods(http.MethodPost)
	taskRoutes.HandleFunc("/{taskId}", tasks.UpdateTask).Methods(http.MethodPatch)
	taskRoutes.HandleFunc("/{taskId}", tasks.DeleteTask).Methods(http.MethodDelete)

	userRoutes := r.PathPrefix("/api/users").Subrouter()
	userRoutes.Use(middleware.JWTAuth(jwtService))
	userRoutes.HandleFunc("", users.GetAllUsers).Methods(http.MethodGet)
	userRoutes.HandleFunc("", users.CreateUser).Methods(http.MethodPost)
	userRoutes.HandleFunc("", users.UpdateUser).Methods(http.MethodPatch)
	userRoutes.HandleFunc("", users.DeleteUser).Methods(http.MethodDelete)

	return r
}
