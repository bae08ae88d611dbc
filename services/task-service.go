package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/manku13/Task-Manager-BackEnd/logging"
	"github.com/manku13/Task-Manager-BackEnd/models"
)

// TaskStore is the slice of the document store the task repository needs:
// find-one-by-email and whole-document save.
type TaskStore interface {
	FindByEmail(ctx context.Context, email string) (*models.TaskCollection, error)
	Save(ctx context.Context, tc *models.TaskCollection) error
}

// TaskService owns the invariant of exactly one task-collection document
// per user email. All mutations are read-modify-write over that document,
// so concurrent updates to two tasks of one user race at document level.
type TaskService struct {
	store TaskStore
}

func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) GetTasks(ctx context.Context, userEmail string) ([]models.Task, error) {
	if userEmail == "" {
		return nil, fmt.Errorf("%w: user email is required", models.ErrValidation)
	}

	collection, err := s.store.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	return collection.Tasks, nil
}

// findOrCreate returns the user's collection, creating an empty one when
// none exists yet. Lazy creation and lookup are one conceptual operation;
// the unique index on userEmail keeps a concurrent double-create from
// producing two documents.
func (s *TaskService) findOrCreate(ctx context.Context, userEmail string) (*models.TaskCollection, error) {
	collection, err := s.store.FindByEmail(ctx, userEmail)
	if err == nil {
		return collection, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	return &models.TaskCollection{UserEmail: userEmail, Tasks: []models.Task{}}, nil
}

func (s *TaskService) AddTask(ctx context.Context, input models.TaskInput) ([]models.Task, error) {
	if err := models.Validate(input); err != nil {
		return nil, err
	}

	collection, err := s.findOrCreate(ctx, input.UserEmail)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		ID:          primitive.NewObjectID(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     *input.DueDate,
		Priority:    input.Priority,
		Status:      input.Status,
		History:     []models.HistoryEntry{},
	}
	if task.Priority == "" {
		task.Priority = models.PriorityLow
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	}

	collection.Tasks = append(collection.Tasks, task)

	if err := s.store.Save(ctx, collection); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: TASK_CREATED, Description: Task %s created for user %s", task.ID.Hex(), input.UserEmail)
	return collection.Tasks, nil
}

// UpdateTask merges the supplied fields into the task, last write wins.
// Status and priority may be set to any enum value at any time; there is
// deliberately no transition guard.
func (s *TaskService) UpdateTask(ctx context.Context, userEmail, taskID string, patch models.TaskPatch) (*models.Task, error) {
	if userEmail == "" || taskID == "" {
		return nil, fmt.Errorf("%w: user email and task ID are required", models.ErrValidation)
	}
	if err := models.Validate(patch); err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid task ID format", models.ErrValidation)
	}

	collection, err := s.store.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range collection.Tasks {
		if collection.Tasks[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, models.ErrNotFound
	}

	task := &collection.Tasks[index]
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}

	task.History = append(task.History, models.HistoryEntry{
		Action:    "updated",
		Details:   "Task updated with new data",
		Timestamp: time.Now().UTC(),
	})

	if err := s.store.Save(ctx, collection); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userEmail, taskID string) error {
	if userEmail == "" || taskID == "" {
		return fmt.Errorf("%w: user email and task ID are required", models.ErrValidation)
	}

	id, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return fmt.Errorf("%w: invalid task ID format", models.ErrValidation)
	}

	collection, err := s.store.FindByEmail(ctx, userEmail)
	if err != nil {
		return err
	}

	initial := len(collection.Tasks)
	kept := collection.Tasks[:0:0]
	for _, t := range collection.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == initial {
		return models.ErrNotFound
	}
	collection.Tasks = kept

	if err := s.store.Save(ctx, collection); err != nil {
		return err
	}

	logging.Logger.Infof("Event ID: TASK_DELETED, Description: Task %s deleted for user %s", taskID, userEmail)
	return nil
}
