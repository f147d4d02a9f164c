package parser

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// ParseError reports a malformed upload payload. Its message is safe to
// surface to the client.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func newParseError(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// Parse turns raw upload bytes into an ordered list of loosely typed candidate
// records. The format is routed by the filename suffix; the declared MIME type
// is advisory only and is not consulted.
func Parse(filename string, data []byte) ([]map[string]any, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(data)
	case ".json":
		return parseJSON(data)
	default:
		return nil, newParseError("unsupported file extension %q: expected .csv or .json", filepath.Ext(filename))
	}
}

// parseCSV reads a header row and maps each data row onto it. Coordinate
// columns are converted to float64 here so the validator sees numbers on both
// the CSV and JSON paths.
func parseCSV(data []byte) ([]map[string]any, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, newParseError("CSV file is empty")
		}
		return nil, newParseError("failed to read CSV header: %v", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []map[string]any
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newParseError("failed to read CSV row: %v", err)
		}

		record := make(map[string]any, len(header))
		for i, field := range header {
			value := row[i]
			if isCoordinateField(field) {
				num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
				if err != nil {
					return nil, newParseError("invalid %s value %q", strings.ToLower(field), value)
				}
				record[field] = num
				continue
			}
			record[field] = value
		}
		records = append(records, record)
	}

	return records, nil
}

// parseJSON accepts either an array of objects or a single object, which is
// treated as a one-element batch.
func parseJSON(data []byte) ([]map[string]any, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, newParseError("invalid JSON: %v", err)
	}

	switch v := payload.(type) {
	case []any:
		records := make([]map[string]any, 0, len(v))
		for i, elem := range v {
			record, ok := elem.(map[string]any)
			if !ok {
				return nil, newParseError("JSON array element %d is not an object", i)
			}
			records = append(records, record)
		}
		return records, nil
	case map[string]any:
		return []map[string]any{v}, nil
	default:
		return nil, newParseError("JSON payload must be an object or an array of objects")
	}
}

func isCoordinateField(field string) bool {
	switch strings.ToLower(field) {
	case "latitude", "longitude":
		return true
	}
	return false
}
