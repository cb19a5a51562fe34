package migrations

import (
	"github.com/jmoiron/sqlx"
)

func init() {
	m.addMigration(&migration{
		version: "20260110091000",
		up:      mig_20260110091000_assets_up,
		down:    mig_20260110091000_assets_down,
	})
}

func mig_20260110091000_assets_up(tx *sqlx.Tx) error {
	_, err := tx.Exec(`
        CREATE TABLE IF NOT EXISTS assets (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            name VARCHAR(255) NOT NULL,
            ip_address VARCHAR(255) NOT NULL,
            type VARCHAR(255) NOT NULL,
            status VARCHAR(50) NOT NULL DEFAULT 'Active'
                CHECK (status IN ('Active', 'Inactive', 'Maintenance', 'Decommissioned')),
            cloud_model VARCHAR(255) NOT NULL DEFAULT '',
            provider VARCHAR(255) NOT NULL DEFAULT '',
            location VARCHAR(255) NOT NULL DEFAULT '',
            asset_department VARCHAR(50) NOT NULL DEFAULT ''
                CHECK (asset_department IN ('', 'Cloud', 'Network', 'VOIP')),
            username VARCHAR(255) NOT NULL DEFAULT '',
            password VARCHAR(255) NOT NULL DEFAULT '',
            tags JSONB NOT NULL DEFAULT '[]',
            notes TEXT NOT NULL DEFAULT '',
            created_by UUID NOT NULL REFERENCES users(id),
            last_updated TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
        );
    `)
	if err != nil {
		return err
	}

	// List always sorts on last_updated
	_, err = tx.Exec(`
        CREATE INDEX IF NOT EXISTS idx_assets_last_updated ON assets(last_updated DESC);
    `)

	return err
}

func mig_20260110091000_assets_down(tx *sqlx.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS assets;`)
	return err
}
