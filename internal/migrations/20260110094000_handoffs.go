package migrations

import (
	"github.com/jmoiron/sqlx"
)

func init() {
	m.addMigration(&migration{
		version: "20260110094000",
		up:      mig_20260110094000_handoffs_up,
		down:    mig_20260110094000_handoffs_down,
	})
}

func mig_20260110094000_handoffs_up(tx *sqlx.Tx) error {
	// related_assets/related_tasks are plain id lists, deliberately without
	// foreign keys: deleting an asset does not cascade into old handoffs.
	_, err := tx.Exec(`
        CREATE TABLE IF NOT EXISTS handoffs (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            from_user UUID NOT NULL REFERENCES users(id),
            to_user UUID NOT NULL REFERENCES users(id),
            summary TEXT NOT NULL,
            related_assets JSONB NOT NULL DEFAULT '[]',
            related_tasks JSONB NOT NULL DEFAULT '[]',
            created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
        );
    `)

	return err
}

func mig_20260110094000_handoffs_down(tx *sqlx.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS handoffs;`)
	return err
}
