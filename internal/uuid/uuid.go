// Package uuid generates and validates the UUIDv4 identifiers used as
// primary keys across all entities. IDs are always assigned server-side.
package uuid

import googleuuid "github.com/google/uuid"

// New generates a new random UUIDv4 string.
func New() string {
	return googleuuid.New().String()
}

// Parse validates and normalizes a UUID string.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
