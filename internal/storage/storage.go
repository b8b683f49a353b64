package storage

import (
	"context"
	"errors"
)

// KV is the on-device key-value primitive the stores are layered on.
// Values are opaque strings (the stores put JSON arrays in them).
type KV interface {
	// Get returns the value stored under key. found is false when the key was never
	// written or has been removed; that is not an error.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key succeeds.
	Remove(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Supported values for storage.driver.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
	DriverRedis    = "redis"
	DriverDynamoDB = "dynamodb"
	DriverS3       = "s3"
)

var (
	ErrUnknownDriver = errors.New("unknown storage driver")
	ErrClosed        = errors.New("storage is closed")
)
