package task

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	StatusToDo       TaskStatus = "To Do"
	StatusInProgress TaskStatus = "In Progress"
	StatusInReview   TaskStatus = "In Review"
	StatusDone       TaskStatus = "Done"
)

type SubTask struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task route handlers are not implemented yet; the model exists so the
// schema is versioned alongside the rest of the store.
type Task struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	ProjectID   uuid.UUID  `db:"project_id" json:"projectId"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description,omitempty"`
	Assignee    *uuid.UUID `db:"assignee" json:"assignee,omitempty"`
	DueDate     *time.Time `db:"due_date" json:"dueDate,omitempty"`
	Status      TaskStatus `db:"status" json:"status"`
	SubTasks    []SubTask  `db:"sub_tasks" json:"subTasks"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
}
