package service

import (
	"context"
	"fmt"
	"strings"

	"asset-catalog-api/internal/models"
)

// InvalidInputError marks a client-correctable request problem. The handler
// layer maps it to a 400 response; its message is safe to surface.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// AssetService contains the core business logic for the read and delete paths
type AssetService struct {
	store CatalogStore
}

// Store interface for dependency injection
type CatalogStore interface {
	List(filter string) []models.CompanyAsset
	Delete(companyID string, latitude, longitude float64) (models.AssetRecord, bool)
	Companies() []string
	TotalCount() int
}

// NewAssetService creates a new asset service
func NewAssetService(store CatalogStore) *AssetService {
	return &AssetService{store: store}
}

// ListAssets returns every stored asset, optionally narrowed by a
// case-insensitive substring match on the company identifier. An empty result
// is a valid outcome, not an error.
func (s *AssetService) ListAssets(ctx context.Context, companyFilter string) ([]models.CompanyAsset, error) {
	return s.store.List(companyFilter), nil
}

// ListCompanies returns the company identifiers currently holding assets and
// the total record count across all of them.
func (s *AssetService) ListCompanies(ctx context.Context) ([]string, int, error) {
	return s.store.Companies(), s.store.TotalCount(), nil
}

// DeleteAsset removes the stored records within coordinate tolerance of the
// given point and returns a summary of the first one removed. A nil result
// with a nil error means nothing matched.
func (s *AssetService) DeleteAsset(ctx context.Context, companyID string, latitude, longitude float64) (*models.DeletedAsset, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, &InvalidInputError{Message: "companyId is required"}
	}
	if latitude < -90 || latitude > 90 {
		return nil, &InvalidInputError{Message: fmt.Sprintf("invalid latitude: %v is outside [-90, 90]", latitude)}
	}
	if longitude < -180 || longitude > 180 {
		return nil, &InvalidInputError{Message: fmt.Sprintf("invalid longitude: %v is outside [-180, 180]", longitude)}
	}

	record, ok := s.store.Delete(companyID, latitude, longitude)
	if !ok {
		return nil, nil
	}
	return &models.DeletedAsset{Address: record.Address, CompanyID: companyID}, nil
}
