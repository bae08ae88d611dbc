package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Date accepts both "2006-01-02" and RFC 3339 timestamps on input. A value
// with no time-of-day component marshals back as a plain date.
type Date struct {
	time.Time
}

const dateOnly = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Hour() == 0 && d.Minute() == 0 && d.Second() == 0 && d.Nanosecond() == 0 {
		return []byte(`"` + d.Format(dateOnly) + `"`), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	s = s[1 : len(s)-1]
	if t, err := time.Parse(dateOnly, s); err == nil {
		d.Time = t.UTC()
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	d.Time = t.UTC()
	return nil
}

func (d Date) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.Time)
}

func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var tm time.Time
	if err := bson.UnmarshalValue(t, data, &tm); err != nil {
		return err
	}
	d.Time = tm.UTC()
	return nil
}

// HistoryEntry is an append-only audit record attached to a task. Entries
// are never mutated or removed once written.
type HistoryEntry struct {
	Action    string    `bson:"action" json:"action"`
	Details   string    `bson:"details" json:"details"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Task is an embedded sub-document of a TaskCollection. Its ID is generated
// on append and is unique within the owning collection.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	DueDate     Date               `bson:"dueDate" json:"dueDate"`
	Priority    TaskPriority       `bson:"priority" json:"priority"`
	Status      TaskStatus         `bson:"status" json:"status"`
	History     []HistoryEntry     `bson:"history" json:"history"`
}

// TaskCollection holds the whole task list for one user. There is at most
// one document per userEmail; every mutation rewrites the full document.
type TaskCollection struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Tasks     []Task             `bson:"tasks" json:"tasks"`
}

// TaskInput carries the fields of a task creation request.
type TaskInput struct {
	UserEmail   string       `json:"userEmail" validate:"required"`
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description" validate:"required"`
	DueDate     *Date        `json:"dueDate" validate:"required"`
	Priority    TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      TaskStatus   `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
}

// TaskPatch is a partial update. Nil fields are left untouched; supplied
// fields overwrite, last write wins. Enum membership is the only check.
type TaskPatch struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	DueDate     *Date         `json:"dueDate"`
	Priority    *TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      *TaskStatus   `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
}
