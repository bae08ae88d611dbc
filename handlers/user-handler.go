package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/manku13/Task-Manager-BackEnd/logging"
	"github.com/manku13/Task-Manager-BackEnd/models"
	"github.com/manku13/Task-Manager-BackEnd/services"
)

// UserHandler serves the token-protected /api/users administration surface.
type UserHandler struct {
	UserService *services.UserService
}

type CreateUserRequest struct {
	Username string   `json:"username" validate:"required"`
	Email    string   `json:"email" validate:"required"`
	Password string   `json:"password" validate:"required"`
	Roles    []string `json:"roles" validate:"required,min=1"`
}

type UpdateUserRequest struct {
	ID       string   `json:"id" validate:"required"`
	Username string   `json:"username" validate:"required"`
	Roles    []string `json:"roles" validate:"required,min=1"`
	Active   *bool    `json:"active" validate:"required"`
	Password string   `json:"password"`
}

type DeleteUserRequest struct {
	ID string `json:"id"`
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.GetAllUsers(r.Context())
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondMessage(w, http.StatusBadRequest, "No users found")
			return
		}
		logging.Logger.Errorf("Event ID: USERS_FETCH_FAILED, Description: Failed to fetch users: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if err := models.Validate(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), req.Username, req.Email, req.Password, req.Roles)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUsernameTaken):
			respondMessage(w, http.StatusConflict, "Username already used")
		case errors.Is(err, models.ErrEmailTaken):
			respondMessage(w, http.StatusConflict, "Email already exists")
		case errors.Is(err, models.ErrValidation):
			respondMessage(w, http.StatusBadRequest, "All fields are required")
		default:
			logging.Logger.Errorf("Event ID: USER_CREATE_FAILED, Description: Failed to create user: %v", err)
			respondMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	respondMessage(w, http.StatusCreated, fmt.Sprintf("New user %s created", user.Username))
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if err := models.Validate(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "All fields except password are required")
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	user, err := h.UserService.UpdateUser(r.Context(), id, req.Username, req.Roles, *req.Active, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUsernameTaken):
			respondMessage(w, http.StatusConflict, "Duplicate username")
		case errors.Is(err, models.ErrNotFound):
			respondMessage(w, http.StatusBadRequest, "User not found")
		default:
			logging.Logger.Errorf("Event ID: USER_UPDATE_FAILED, Description: Failed to update user %s: %v", req.ID, err)
			respondMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	respondMessage(w, http.StatusOK, fmt.Sprintf("%s updated", user.Username))
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var req DeleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		respondMessage(w, http.StatusBadRequest, "User ID required")
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	user, err := h.UserService.DeleteUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondMessage(w, http.StatusBadRequest, "User not found")
			return
		}
		logging.Logger.Errorf("Event ID: USER_DELETE_FAILED, Description: Failed to delete user %s: %v", req.ID, err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondMessage(w, http.StatusOK, fmt.Sprintf("Username %s with ID %s deleted", user.Username, user.ID.Hex()))
}
