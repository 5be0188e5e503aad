package utils

import "github.com/google/uuid"

// RequestIDHeader carries the per-request correlation id on outbound calls.
const RequestIDHeader = "X-Request-ID"

// UUIDGenerator produces time-ordered identifiers for request correlation.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 when the
// v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
