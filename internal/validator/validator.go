package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"asset-catalog-api/internal/models"
)

// ValidationError carries every violation found in an uploaded batch. The
// upload path is all-or-nothing: one bad record rejects the whole batch.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// Validate checks one candidate record against the field rules, in order:
// address, latitude, longitude. All rules are checked; violations accumulate
// rather than short-circuiting.
func Validate(candidate map[string]any) (models.AssetRecord, []string) {
	var violations []string
	var record models.AssetRecord

	address, ok := candidate["address"].(string)
	address = strings.TrimSpace(address)
	if !ok || address == "" {
		violations = append(violations, "address is required and must be a non-empty string")
	}
	record.Address = address

	lat, ok := toFloat(candidate["latitude"])
	switch {
	case !ok:
		violations = append(violations, fmt.Sprintf("latitude must be a number, got %v", candidate["latitude"]))
	case lat < -90 || lat > 90:
		violations = append(violations, fmt.Sprintf("latitude must be between -90 and 90, got %v", lat))
	default:
		record.Latitude = lat
	}

	lon, ok := toFloat(candidate["longitude"])
	switch {
	case !ok:
		violations = append(violations, fmt.Sprintf("longitude must be a number, got %v", candidate["longitude"]))
	case lon < -180 || lon > 180:
		violations = append(violations, fmt.Sprintf("longitude must be between -180 and 180, got %v", lon))
	default:
		record.Longitude = lon
	}

	if violations != nil {
		return models.AssetRecord{}, violations
	}
	return record, nil
}

// ValidateBatch validates every candidate independently and returns either
// the full list of accepted records or a ValidationError listing every
// violation, each prefixed with its record position.
func ValidateBatch(candidates []map[string]any) ([]models.AssetRecord, error) {
	records := make([]models.AssetRecord, 0, len(candidates))
	var violations []string

	for i, candidate := range candidates {
		record, recordViolations := Validate(candidate)
		if recordViolations != nil {
			for _, v := range recordViolations {
				violations = append(violations, fmt.Sprintf("record %d: %s", i+1, v))
			}
			continue
		}
		records = append(records, record)
	}

	if violations != nil {
		return nil, &ValidationError{Violations: violations}
	}
	return records, nil
}

// toFloat coerces the loosely typed values the parser produces. CSV rows are
// pre-converted to float64; JSON payloads may still carry numeric strings.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return 0, false
	}
}
