package asset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrAssetNotFound = errors.New("asset not found")

const assetColumns = `id, name, ip_address, type, status, cloud_model, provider, location,
               asset_department, username, password, tags, notes, created_by, last_updated`

// Repository is the storage boundary for assets
type Repository interface {
	Create(ctx context.Context, a *Asset) (*Asset, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Asset, error)
	List(ctx context.Context) ([]*Asset, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateAssetRequest) (*Asset, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssetRepo handles database operations for assets
type AssetRepo struct {
	db *sqlx.DB
}

// NewAssetRepo creates a new asset repository
func NewAssetRepo(db *sqlx.DB) *AssetRepo {
	return &AssetRepo{db: db}
}

// Create persists a new asset
func (r *AssetRepo) Create(ctx context.Context, a *Asset) (*Asset, error) {
	query := `
        INSERT INTO assets (name, ip_address, type, status, cloud_model, provider, location,
                            asset_department, username, password, tags, notes, created_by, last_updated)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
        RETURNING ` + assetColumns + `
    `

	var created Asset
	err := r.db.GetContext(ctx, &created, query,
		a.Name, a.IPAddress, a.Type, a.Status, a.CloudModel, a.Provider, a.Location,
		a.AssetDepartment, a.Username, a.Password, a.Tags, a.Notes, a.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return &created, nil
}

// GetByID retrieves an asset by ID
func (r *AssetRepo) GetByID(ctx context.Context, id uuid.UUID) (*Asset, error) {
	query := `
        SELECT ` + assetColumns + `
        FROM assets
        WHERE id = $1
    `

	var a Asset
	err := r.db.GetContext(ctx, &a, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return &a, nil
}

type assetListRow struct {
	Asset
	CreatorName  sql.NullString `db:"creator_name"`
	CreatorEmail sql.NullString `db:"creator_email"`
}

// List retrieves all assets ordered by last_updated descending, expanding the
// creator to name and email only.
func (r *AssetRepo) List(ctx context.Context) ([]*Asset, error) {
	query := `
        SELECT a.id, a.name, a.ip_address, a.type, a.status, a.cloud_model, a.provider,
               a.location, a.asset_department, a.username, a.password, a.tags, a.notes,
               a.created_by, a.last_updated,
               u.name AS creator_name, u.email AS creator_email
        FROM assets a
        LEFT JOIN users u ON u.id = a.created_by
        ORDER BY a.last_updated DESC
    `

	var rows []assetListRow
	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*Asset, 0, len(rows))
	for i := range rows {
		a := rows[i].Asset
		if rows[i].CreatorName.Valid {
			a.Creator = &CreatorRef{
				ID:    a.CreatedBy,
				Name:  rows[i].CreatorName.String,
				Email: rows[i].CreatorEmail.String,
			}
		}
		assets = append(assets, &a)
	}

	return assets, nil
}

// Update merges the non-nil request fields into the stored row. last_updated
// is refreshed on every successful update, whether or not any other field
// changed.
func (r *AssetRepo) Update(ctx context.Context, id uuid.UUID, req *UpdateAssetRequest) (*Asset, error) {
	setParts := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.IPAddress != nil {
		addSet("ip_address", *req.IPAddress)
	}
	if req.Type != nil {
		addSet("type", *req.Type)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.CloudModel != nil {
		addSet("cloud_model", *req.CloudModel)
	}
	if req.Provider != nil {
		addSet("provider", *req.Provider)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.AssetDepartment != nil {
		addSet("asset_department", *req.AssetDepartment)
	}
	if req.Username != nil {
		addSet("username", *req.Username)
	}
	if req.Password != nil {
		// An explicit empty string clears the stored credential.
		addSet("password", *req.Password)
	}
	if req.Tags != nil {
		addSet("tags", Tags(*req.Tags))
	}
	if req.Notes != nil {
		addSet("notes", *req.Notes)
	}

	setParts = append(setParts, "last_updated = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
        UPDATE assets
        SET %s
        WHERE id = $%d
        RETURNING `+assetColumns+`
    `, strings.Join(setParts, ", "), len(args))

	var a Asset
	err := r.db.GetContext(ctx, &a, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return &a, nil
}

// Delete removes an asset by ID
func (r *AssetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM assets WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAssetNotFound
	}

	return nil
}
