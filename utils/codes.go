package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateAPIKey returns a new tenant API key.
func GenerateAPIKey() string {
	return uuid.New().String()
}

// GenerateTransactionID returns an internal payment reference.
func GenerateTransactionID() string {
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
}
