package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAPIKeyName     = errors.New("api key name is required")
	ErrDuplicateAPIKeyName = errors.New("duplicate api key name")
)
