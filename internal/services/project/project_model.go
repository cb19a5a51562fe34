package project

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	StatusNotStarted ProjectStatus = "Not Started"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
	StatusOnHold     ProjectStatus = "On Hold"
)

// Project route handlers are not implemented yet; the model exists so the
// schema is versioned alongside the rest of the store.
type Project struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Description string        `db:"description" json:"description,omitempty"`
	Status      ProjectStatus `db:"status" json:"status"`
	Owner       uuid.UUID     `db:"owner" json:"owner"`
	Members     []uuid.UUID   `db:"members" json:"members"`
	CreatedAt   time.Time     `db:"created_at" json:"createdAt"`
}
