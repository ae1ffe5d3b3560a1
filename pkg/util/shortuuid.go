package util

import (
	"strings"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// NewUUID returns a new base58 encoded UUID
func NewUUID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}

// NewHexID returns the first n hex characters of a new UUID.
func NewHexID(n int) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	if n < 0 || n > len(hex) {
		n = len(hex)
	}
	return hex[:n]
}
