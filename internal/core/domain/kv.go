package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrKeyNotFound = errors.New("key not found")
)

const (
	KeyUser               = "movewell_user"
	KeyUserEmail          = "movewell_user_email"
	KeyAppointments       = "movewell_appointments"
	KeyStats              = "movewell_stats"
	KeyCompletedExercises = "movewell_completed_exercises"
)

type KeyValueStore interface {
	// Get returns the raw value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// ScopedKey namespaces one of the fixed storage keys to a single user.
func ScopedKey(key, userID string) string {
	return fmt.Sprintf("%s:%s", key, userID)
}
