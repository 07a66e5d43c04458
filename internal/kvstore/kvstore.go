// Package kvstore provides the expiring key-value storage behind
// refresh tokens, email verification tokens, one-time codes and
// rate-limit counters. A missing key and an expired key are the
// same condition: both return ErrNotFound.
package kvstore

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("kvstore: key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete is idempotent: deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Incr increments a counter, setting it to expire after window
	// when the key is created by this call.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	Close() error
}
