package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/manku13/Task-Manager-BackEnd/config"
	"github.com/manku13/Task-Manager-BackEnd/db"
	"github.com/manku13/Task-Manager-BackEnd/handlers"
	"github.com/manku13/Task-Manager-BackEnd/logging"
	"github.com/manku13/Task-Manager-BackEnd/middleware"
	"github.com/manku13/Task-Manager-BackEnd/services"
)

func main() {
	logging.InitLogger()
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Task Manager backend...")

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logging.Logger.Fatal("Event ID: CONFIG_ERROR, Description: JWT_SECRET is not set in the environment variables.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer store.Disconnect(context.Background())
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", cfg.MongoURI)

	if err := store.EnsureIndexes(ctx); err != nil {
		logging.Logger.Fatalf("Event ID: DB_INDEX_FAILED, Description: Failed to create unique indexes: %v", err)
	}

	jwtService := services.NewJWTService(cfg.JWTSecret)
	taskService := services.NewTaskService(store.Tasks())
	userService := services.NewUserService(store.Users(), store.Tasks(), jwtService)

	authHandler := &handlers.AuthHandler{UserService: userService}
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := &handlers.UserHandler{UserService: userService}

	loginLimiter := middleware.NewLoginLimiter(cfg.LoginWindow, cfg.LoginMaxTries)
	r := handlers.NewRouter(authHandler, taskHandler, userHandler, jwtService, loginLimiter)
	handler := middleware.Recovery(middleware.CORS(cfg.AllowedOrigins)(r))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost:%s", cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
