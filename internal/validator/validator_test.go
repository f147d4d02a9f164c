package validator

import (
	"math"
	"testing"

	"asset-catalog-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		candidate  map[string]any
		expected   models.AssetRecord
		violations []string
	}{
		{
			name:      "valid record",
			candidate: map[string]any{"address": "1 Main St", "latitude": 40.0, "longitude": -74.0},
			expected:  models.AssetRecord{Address: "1 Main St", Latitude: 40.0, Longitude: -74.0},
		},
		{
			name:      "address is trimmed",
			candidate: map[string]any{"address": "  1 Main St  ", "latitude": 40.0, "longitude": -74.0},
			expected:  models.AssetRecord{Address: "1 Main St", Latitude: 40.0, Longitude: -74.0},
		},
		{
			name:      "numeric strings coerce",
			candidate: map[string]any{"address": "X", "latitude": "40.5", "longitude": "-74.25"},
			expected:  models.AssetRecord{Address: "X", Latitude: 40.5, Longitude: -74.25},
		},
		{
			name:      "boundary coordinates accepted",
			candidate: map[string]any{"address": "X", "latitude": -90.0, "longitude": 180.0},
			expected:  models.AssetRecord{Address: "X", Latitude: -90.0, Longitude: 180.0},
		},
		{
			name:       "missing address",
			candidate:  map[string]any{"latitude": 40.0, "longitude": -74.0},
			violations: []string{"address is required and must be a non-empty string"},
		},
		{
			name:       "whitespace-only address",
			candidate:  map[string]any{"address": "   ", "latitude": 40.0, "longitude": -74.0},
			violations: []string{"address is required and must be a non-empty string"},
		},
		{
			name:       "non-string address",
			candidate:  map[string]any{"address": 7.0, "latitude": 40.0, "longitude": -74.0},
			violations: []string{"address is required and must be a non-empty string"},
		},
		{
			name:       "latitude out of range",
			candidate:  map[string]any{"address": "X", "latitude": 200.0, "longitude": 0.0},
			violations: []string{"latitude must be between -90 and 90, got 200"},
		},
		{
			name:       "longitude out of range",
			candidate:  map[string]any{"address": "X", "latitude": 0.0, "longitude": -180.5},
			violations: []string{"longitude must be between -180 and 180, got -180.5"},
		},
		{
			name:       "non-numeric latitude",
			candidate:  map[string]any{"address": "X", "latitude": "north", "longitude": 0.0},
			violations: []string{"latitude must be a number, got north"},
		},
		{
			name:       "NaN latitude rejected",
			candidate:  map[string]any{"address": "X", "latitude": math.NaN(), "longitude": 0.0},
			violations: []string{"latitude must be a number, got NaN"},
		},
		{
			name:      "all rules checked, not short-circuited",
			candidate: map[string]any{"latitude": 100.0, "longitude": 200.0},
			violations: []string{
				"address is required and must be a non-empty string",
				"latitude must be between -90 and 90, got 100",
				"longitude must be between -180 and 180, got 200",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, violations := Validate(tt.candidate)

			if tt.violations != nil {
				assert.Equal(t, tt.violations, violations)
				return
			}
			require.Nil(t, violations)
			assert.Equal(t, tt.expected, record)
		})
	}
}

func TestValidateBatch(t *testing.T) {
	t.Run("all valid records accepted in order", func(t *testing.T) {
		records, err := ValidateBatch([]map[string]any{
			{"address": "A", "latitude": 1.0, "longitude": 2.0},
			{"address": "B", "latitude": 3.0, "longitude": 4.0},
		})
		require.NoError(t, err)
		assert.Equal(t, []models.AssetRecord{
			{Address: "A", Latitude: 1.0, Longitude: 2.0},
			{Address: "B", Latitude: 3.0, Longitude: 4.0},
		}, records)
	})

	t.Run("one bad record rejects the whole batch", func(t *testing.T) {
		records, err := ValidateBatch([]map[string]any{
			{"address": "A", "latitude": 1.0, "longitude": 2.0},
			{"address": "B", "latitude": 200.0, "longitude": 4.0},
		})
		assert.Nil(t, records)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"record 2: latitude must be between -90 and 90, got 200"}, validationErr.Violations)
	})

	t.Run("violations from every bad record are collected", func(t *testing.T) {
		_, err := ValidateBatch([]map[string]any{
			{"latitude": 1.0, "longitude": 2.0},
			{"address": "B", "latitude": "bad", "longitude": 4.0},
		})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{
			"record 1: address is required and must be a non-empty string",
			"record 2: latitude must be a number, got bad",
		}, validationErr.Violations)
		assert.Contains(t, validationErr.Error(), "; ")
	})

	t.Run("empty batch is valid", func(t *testing.T) {
		records, err := ValidateBatch(nil)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
