package utils

import "github.com/google/uuid"

// GenerateID returns a new record/user id.
func GenerateID() string {
	return uuid.New().String()
}
