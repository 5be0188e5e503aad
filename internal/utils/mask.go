// Package utils provides general-purpose helpers shared across the client:
// the HTTP client wrapper, request id generation and secret masking.
package utils

import (
	"strings"
	"unicode/utf8"
)

// MaskCharacter replaces hidden characters of a secret.
const MaskCharacter = "*"

const (
	maskVisiblePrefix = 4
	maskVisibleSuffix = 4
)

// MaskKey returns the display form of a secret. Empty input stays empty,
// secrets of up to eight characters are fully masked, longer ones keep their
// first and last four characters. Length is counted in runes.
//
//	MaskKey("")                  // ""
//	MaskKey("abc")               // "***"
//	MaskKey("sk-1234567890abcd") // "sk-1*********abcd"
func MaskKey(value string) string {
	if value == "" {
		return ""
	}

	n := utf8.RuneCountInString(value)
	if n <= maskVisiblePrefix+maskVisibleSuffix {
		return strings.Repeat(MaskCharacter, n)
	}

	runes := []rune(value)

	var b strings.Builder
	b.Grow(len(value))
	b.WriteString(string(runes[:maskVisiblePrefix]))
	b.WriteString(strings.Repeat(MaskCharacter, n-maskVisiblePrefix-maskVisibleSuffix))
	b.WriteString(string(runes[n-maskVisibleSuffix:]))
	return b.String()
}
