// Package storage provides the persisted key/value backend. The rest of the
// application only ever sees logical records addressed by key; where and how
// they are stored is this package's concern.
package storage

import "context"

// KV is the persistence contract. A missing key is not an error: Get reports
// presence through its second return value, and Remove of an absent key is a
// no-op.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}
