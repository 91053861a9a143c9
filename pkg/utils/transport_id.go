package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateTransportID creates a stable, human-readable carrier ID.
// Format: {variant}-{8charHexUUID}
//
// Example:
//   - Input: variant="TRAIN"
//   - Output: "train-a3f8e2b1"
//
// The variant prefix makes the carrier kind readable at a glance while the
// UUID suffix keeps IDs globally unique.
func GenerateTransportID(variant string) string {
	return strings.ToLower(variant) + "-" + generateShortUUID()
}

// GenerateEntityID creates an ID for a factory-owned entity.
// Format: {prefix}-{8charHexUUID}
//
// Example:
//   - Input: prefix="line"
//   - Output: "line-7c01d9aa"
func GenerateEntityID(prefix string) string {
	return strings.ToLower(prefix) + "-" + generateShortUUID()
}

// generateShortUUID creates an 8-character hex string from a UUID.
// This provides sufficient uniqueness while keeping IDs compact.
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
