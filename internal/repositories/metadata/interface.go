package metadata

import "context"

// Repository is a small key-value store for client-side state such as the
// persisted session token and the install secret.
type Repository interface {
	// Get returns the stored value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
