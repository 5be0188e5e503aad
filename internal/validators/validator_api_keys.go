package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-key-keeper/models"
)

const (
	FieldName    = "name"
	FieldAPIKeys = "api_keys"
)

// APIKeysValidator enforces the entry list invariants: every entry has a name
// and names are unique within a list.
type APIKeysValidator struct {
}

func NewAPIKeysValidator() Validator {
	return &APIKeysValidator{}
}

func (v *APIKeysValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.APIKeyEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.APIKeyEntry:
		return v.validateEntry(ctx, *value, fields...)

	case []models.APIKeyEntry:
		return v.validateEntries(ctx, value, fields...)

	case models.SetAPIKeysRequest:
		return v.validateEntries(ctx, value.APIKeys, fields...)
	case *models.SetAPIKeysRequest:
		return v.validateEntries(ctx, value.APIKeys, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *APIKeysValidator) validateEntry(_ context.Context, entry models.APIKeyEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(entry.Name) == "" {
				return ErrEmptyAPIKeyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *APIKeysValidator) validateEntries(ctx context.Context, entries []models.APIKeyEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAPIKeys}
	}

	for _, f := range fields {
		switch f {
		case FieldAPIKeys:
			seen := make(map[string]struct{}, len(entries))
			for i, entry := range entries {
				if err := v.validateEntry(ctx, entry, FieldName); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
				if _, dup := seen[entry.Name]; dup {
					return fmt.Errorf("validation error at index %d: %w: %s", i, ErrDuplicateAPIKeyName, entry.Name)
				}
				seen[entry.Name] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
