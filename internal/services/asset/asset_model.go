package asset

import (
	"database/sql/driver"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

type AssetStatus string

const (
	StatusActive         AssetStatus = "Active"
	StatusInactive       AssetStatus = "Inactive"
	StatusMaintenance    AssetStatus = "Maintenance"
	StatusDecommissioned AssetStatus = "Decommissioned"
)

type AssetDepartment string

const (
	DepartmentCloud   AssetDepartment = "Cloud"
	DepartmentNetwork AssetDepartment = "Network"
	DepartmentVOIP    AssetDepartment = "VOIP"
)

// Tags is stored as a JSONB array so the tag set stays schema-flexible.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	b, err := sonic.Marshal(t)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (t *Tags) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return sonic.Unmarshal(v, t)
	case string:
		return sonic.Unmarshal([]byte(v), t)
	case nil:
		*t = Tags{}
		return nil
	default:
		return errors.New("unsupported tags column type")
	}
}

// CreatorRef is the createdBy expansion returned by List: name and email
// only, never the password hash.
type CreatorRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type Asset struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	Name            string          `db:"name" json:"name"`
	IPAddress       string          `db:"ip_address" json:"ipAddress"`
	Type            string          `db:"type" json:"type"`
	Status          AssetStatus     `db:"status" json:"status"`
	CloudModel      string          `db:"cloud_model" json:"cloudModel,omitempty"`
	Provider        string          `db:"provider" json:"provider,omitempty"`
	Location        string          `db:"location" json:"location,omitempty"`
	AssetDepartment AssetDepartment `db:"asset_department" json:"assetDepartment,omitempty"`
	Username        string          `db:"username" json:"username,omitempty"`
	Password        string          `db:"password" json:"password,omitempty"`
	Tags            Tags            `db:"tags" json:"tags"`
	Notes           string          `db:"notes" json:"notes,omitempty"`
	CreatedBy       uuid.UUID       `db:"created_by" json:"createdBy"`
	Creator         *CreatorRef     `db:"-" json:"creator,omitempty"`
	LastUpdated     time.Time       `db:"last_updated" json:"lastUpdated"`
}

// CreateAssetRequest captures payload for creating an asset. Name, IPAddress
// and Type are required; everything else falls back to declared defaults.
type CreateAssetRequest struct {
	Name            string   `json:"name"`
	IPAddress       string   `json:"ipAddress"`
	Type            string   `json:"type"`
	Status          string   `json:"status"`
	CloudModel      string   `json:"cloudModel"`
	Provider        string   `json:"provider"`
	Location        string   `json:"location"`
	AssetDepartment string   `json:"assetDepartment"`
	Username        string   `json:"username"`
	Password        string   `json:"password"`
	Tags            []string `json:"tags"`
	Notes           string   `json:"notes"`
}

// UpdateAssetRequest captures payload for a partial update. A nil field was
// absent from the request and must be left untouched; a non-nil field is
// written even when it points at an empty string. That distinction is what
// lets an explicit `"password": ""` clear a stored credential while an
// omitted password key leaves it alone.
type UpdateAssetRequest struct {
	Name            *string   `json:"name,omitempty"`
	IPAddress       *string   `json:"ipAddress,omitempty"`
	Type            *string   `json:"type,omitempty"`
	Status          *string   `json:"status,omitempty"`
	CloudModel      *string   `json:"cloudModel,omitempty"`
	Provider        *string   `json:"provider,omitempty"`
	Location        *string   `json:"location,omitempty"`
	AssetDepartment *string   `json:"assetDepartment,omitempty"`
	Username        *string   `json:"username,omitempty"`
	Password        *string   `json:"password,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
}

func validStatus(s string) bool {
	switch AssetStatus(s) {
	case StatusActive, StatusInactive, StatusMaintenance, StatusDecommissioned:
		return true
	}
	return false
}

func validDepartment(d string) bool {
	switch AssetDepartment(d) {
	case DepartmentCloud, DepartmentNetwork, DepartmentVOIP:
		return true
	}
	return false
}
