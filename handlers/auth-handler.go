package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/manku13/Task-Manager-BackEnd/logging"
	"github.com/manku13/Task-Manager-BackEnd/models"
	"github.com/manku13/Task-Manager-BackEnd/services"
)

type AuthHandler struct {
	UserService *services.UserService
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Token    string        `json:"token"`
	Tasks    []models.Task `json:"tasks"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if err := models.Validate(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, token, err := h.UserService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			respondMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		logging.Logger.Errorf("Event ID: REGISTER_FAILED, Description: Registration failed: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusCreated, RegisterResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
		Tasks:    []models.Task{},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	user, token, err := h.UserService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password answer identically.
		if errors.Is(err, models.ErrUnauthorized) {
			respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logging.Logger.Errorf("Event ID: LOGIN_FAILED, Description: Login failed: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	})
}
