package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrValidation = errors.New("validation failed")

// AssetService contains business logic for assets
type AssetService struct {
	repo Repository
}

// NewAssetService constructs a new AssetService
func NewAssetService(repo Repository) *AssetService {
	return &AssetService{repo: repo}
}

// Create validates the request and persists a new asset owned by createdBy.
func (s *AssetService) Create(ctx context.Context, req *CreateAssetRequest, createdBy uuid.UUID) (*Asset, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.IPAddress == "" {
		return nil, fmt.Errorf("%w: ipAddress is required", ErrValidation)
	}
	if req.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrValidation)
	}

	status := string(StatusActive)
	if req.Status != "" {
		if !validStatus(req.Status) {
			return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, req.Status)
		}
		status = req.Status
	}

	if req.AssetDepartment != "" && !validDepartment(req.AssetDepartment) {
		return nil, fmt.Errorf("%w: invalid assetDepartment %q", ErrValidation, req.AssetDepartment)
	}

	created, err := s.repo.Create(ctx, &Asset{
		Name:            req.Name,
		IPAddress:       req.IPAddress,
		Type:            req.Type,
		Status:          AssetStatus(status),
		CloudModel:      req.CloudModel,
		Provider:        req.Provider,
		Location:        req.Location,
		AssetDepartment: AssetDepartment(req.AssetDepartment),
		Username:        req.Username,
		Password:        req.Password,
		Tags:            Tags(req.Tags),
		Notes:           req.Notes,
		CreatedBy:       createdBy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return created, nil
}

// List returns all assets, most recently touched first.
func (s *AssetService) List(ctx context.Context) ([]*Asset, error) {
	assets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	return assets, nil
}

// Update merges the fields present in the request into the stored asset.
// Fields absent from the request keep their prior values.
func (s *AssetService) Update(ctx context.Context, id uuid.UUID, req *UpdateAssetRequest) (*Asset, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if req.IPAddress != nil && *req.IPAddress == "" {
		return nil, fmt.Errorf("%w: ipAddress cannot be empty", ErrValidation)
	}
	if req.Type != nil && *req.Type == "" {
		return nil, fmt.Errorf("%w: type cannot be empty", ErrValidation)
	}
	if req.Status != nil && !validStatus(*req.Status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, *req.Status)
	}
	if req.AssetDepartment != nil && *req.AssetDepartment != "" && !validDepartment(*req.AssetDepartment) {
		return nil, fmt.Errorf("%w: invalid assetDepartment %q", ErrValidation, *req.AssetDepartment)
	}

	// Resolve the id before writing so an unknown asset fails with NotFound
	// rather than a silent no-op.
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return updated, nil
}

// Delete removes an asset by ID
func (s *AssetService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			return ErrAssetNotFound
		}
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}
