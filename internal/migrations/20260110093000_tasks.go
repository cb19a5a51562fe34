package migrations

import (
	"github.com/jmoiron/sqlx"
)

func init() {
	m.addMigration(&migration{
		version: "20260110093000",
		up:      mig_20260110093000_tasks_up,
		down:    mig_20260110093000_tasks_down,
	})
}

func mig_20260110093000_tasks_up(tx *sqlx.Tx) error {
	_, err := tx.Exec(`
        CREATE TABLE IF NOT EXISTS tasks (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            project_id UUID NOT NULL REFERENCES projects(id),
            title VARCHAR(255) NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            assignee UUID REFERENCES users(id),
            due_date TIMESTAMP WITH TIME ZONE,
            status VARCHAR(50) NOT NULL DEFAULT 'To Do'
                CHECK (status IN ('To Do', 'In Progress', 'In Review', 'Done')),
            sub_tasks JSONB NOT NULL DEFAULT '[]',
            created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
        );
    `)

	return err
}

func mig_20260110093000_tasks_down(tx *sqlx.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS tasks;`)
	return err
}
