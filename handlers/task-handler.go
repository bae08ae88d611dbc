package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/manku13/Task-Manager-BackEnd/logging"
	"github.com/manku13/Task-Manager-BackEnd/models"
	"github.com/manku13/Task-Manager-BackEnd/services"
)

type TaskHandler struct {
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	userEmail := r.URL.Query().Get("userEmail")
	if userEmail == "" {
		respondMessage(w, http.StatusBadRequest, "User email is required")
		return
	}

	tasks, err := h.service.GetTasks(r.Context(), userEmail)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "No tasks found for this user")
			return
		}
		logging.Logger.Errorf("Event ID: TASKS_FETCH_FAILED, Description: Failed to fetch tasks: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var input models.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	tasks, err := h.service.AddTask(r.Context(), input)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			respondMessage(w, http.StatusBadRequest, "All fields are required")
			return
		}
		logging.Logger.Errorf("Event ID: TASK_CREATE_FAILED, Description: Failed to create task: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusCreated, tasks)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userEmail := r.URL.Query().Get("userEmail")
	taskID := mux.Vars(r)["taskId"]
	if userEmail == "" || taskID == "" {
		respondMessage(w, http.StatusBadRequest, "User email and task ID are required")
		return
	}

	var patch models.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	task, err := h.service.UpdateTask(r.Context(), userEmail, taskID, patch)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			respondMessage(w, http.StatusBadRequest, "Invalid task data")
		case errors.Is(err, models.ErrNotFound):
			respondMessage(w, http.StatusNotFound, "Task not found")
		default:
			logging.Logger.Errorf("Event ID: TASK_UPDATE_FAILED, Description: Failed to update task %s: %v", taskID, err)
			respondMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userEmail := r.URL.Query().Get("userEmail")
	taskID := mux.Vars(r)["taskId"]
	if userEmail == "" || taskID == "" {
		respondMessage(w, http.StatusBadRequest, "User email and task ID are required")
		return
	}

	err := h.service.DeleteTask(r.Context(), userEmail, taskID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			respondMessage(w, http.StatusBadRequest, "Invalid task ID format")
		case errors.Is(err, models.ErrNotFound):
			respondMessage(w, http.StatusNotFound, "Task not found")
		default:
			logging.Logger.Errorf("Event ID: TASK_DELETE_FAILED, Description: Failed to delete task %s: %v", taskID, err)
			respondMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	respondMessage(w, http.StatusOK, fmt.Sprintf("Task with ID %s deleted", taskID))
}
