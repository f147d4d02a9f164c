package service

import (
	"context"
	"fmt"
	"strings"

	"asset-catalog-api/internal/models"
	"asset-catalog-api/internal/parser"
	"asset-catalog-api/internal/store"
	"asset-catalog-api/internal/validator"
)

// UploadService orchestrates one file ingestion: parse, validate, store.
type UploadService struct {
	store IngestStore
}

// Store interface for dependency injection
type IngestStore interface {
	Add(companyID string, records []models.AssetRecord) store.AddResult
}

// NewUploadService creates a new upload service
func NewUploadService(store IngestStore) *UploadService {
	return &UploadService{store: store}
}

// UploadAssets ingests one uploaded file for the given company. It fails fast
// with no store mutation when the company identifier is blank, the payload is
// empty, the file does not parse, or any record fails validation (the batch is
// all-or-nothing). On success the summary message names the company and the
// counts.
func (s *UploadService) UploadAssets(ctx context.Context, companyID, filename string, data []byte) (*models.UploadSummary, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, &InvalidInputError{Message: "companyId is required"}
	}
	if len(data) == 0 {
		return nil, &InvalidInputError{Message: "uploaded file is empty"}
	}

	candidates, err := parser.Parse(filename, data)
	if err != nil {
		return nil, err
	}

	records, err := validator.ValidateBatch(candidates)
	if err != nil {
		return nil, err
	}

	result := s.store.Add(companyID, records)

	message := fmt.Sprintf("Added %d asset(s) for company %q", len(result.Added), companyID)
	if result.DuplicatesSkipped > 0 {
		message += fmt.Sprintf(", skipped %d duplicate(s)", result.DuplicatesSkipped)
	}

	return &models.UploadSummary{
		Message:           message,
		Added:             result.Added,
		DuplicatesSkipped: result.DuplicatesSkipped,
	}, nil
}
