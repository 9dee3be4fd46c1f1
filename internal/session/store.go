package session

import (
	"context"
	"errors"
)

// Store is the per-visitor durable key-value state backing the cart and
// the pending/last order records. Fields are isolated per session id by
// construction, so no cross-visitor coordination is needed.
type Store interface {
	Get(ctx context.Context, sessionID, field string) ([]byte, error)
	Set(ctx context.Context, sessionID, field string, value []byte) error
	Delete(ctx context.Context, sessionID, field string) error
}

var ErrNoValue = errors.New("session: no value")
