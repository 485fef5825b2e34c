// Package api loads the question record collection from a file or URL.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gravitrone/qbank/internal/catalog"
)

// DefaultSource is the document location used when none is configured.
const DefaultSource = "data/questions.json"

// Source yields the full record collection once.
type Source interface {
	Load(ctx context.Context) ([]catalog.Record, error)
}

// NewSource returns an HTTP client for http(s) locations, else a file source.
func NewSource(location string, timeout ...time.Duration) Source {
	location = strings.TrimSpace(location)
	if location == "" {
		location = DefaultSource
	}
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewClient(location, timeout...)
	}
	return FileSource{Path: location}
}

// FileSource reads the document from disk.
type FileSource struct {
	Path string
}

// Load reads, decodes and validates the record collection.
func (f FileSource) Load(ctx context.Context) ([]catalog.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: f.Path, Err: err}
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &LoadError{Source: f.Path, Err: fmt.Errorf("read file: %w", err)}
	}
	records, err := decodeRecords(data)
	if err != nil {
		return nil, &LoadError{Source: f.Path, Err: err}
	}
	return records, nil
}

// --- Decoding ---

var recordValidate = validator.New()

// decodeRecords accepts a bare JSON array or a {"data": [...]} envelope.
func decodeRecords(data []byte) ([]catalog.Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("decode records: empty document")
	}

	var records []catalog.Record
	if trimmed[0] == '{' {
		var envelope struct {
			Data []catalog.Record `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("decode records: %w", err)
		}
		if envelope.Data == nil {
			return nil, errors.New("decode records: missing data array")
		}
		records = envelope.Data
	} else if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	if err := validateRecords(records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []catalog.Record{}
	}
	return records, nil
}

func validateRecords(records []catalog.Record) error {
	seen := make(map[string]int, len(records))
	for i := range records {
		if err := recordValidate.Struct(&records[i]); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				return fmt.Errorf("record %d: missing %s", i, jsonFieldName(verrs[0].Field()))
			}
			return fmt.Errorf("record %d: %w", i, err)
		}
		id := records[i].ID
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("record %d: duplicate id %q (first at %d)", i, id, prev)
		}
		seen[id] = i
	}
	return nil
}

func jsonFieldName(field string) string {
	switch field {
	case "ID":
		return "id"
	case "QuestionText":
		return "question_text"
	case "SolutionText":
		return "solution_text"
	default:
		return strings.ToLower(field)
	}
}
