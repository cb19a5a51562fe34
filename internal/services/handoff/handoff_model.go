package handoff

import (
	"time"

	"github.com/google/uuid"
)

// Handoff route handlers are not implemented yet; the model exists so the
// schema is versioned alongside the rest of the store. Related ids are plain
// references: deleting an asset leaves old handoffs untouched.
type Handoff struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	FromUser      uuid.UUID   `db:"from_user" json:"fromUser"`
	ToUser        uuid.UUID   `db:"to_user" json:"toUser"`
	Summary       string      `db:"summary" json:"summary"`
	RelatedAssets []uuid.UUID `db:"related_assets" json:"relatedAssets"`
	RelatedTasks  []uuid.UUID `db:"related_tasks" json:"relatedTasks"`
	CreatedAt     time.Time   `db:"created_at" json:"createdAt"`
}
