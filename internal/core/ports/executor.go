package ports

import "context"

// KeyedExecutor runs fn such that no two calls sharing a key execute
// concurrently. Do returns fn's error, or the context error if the
// call is abandoned before fn runs.
type KeyedExecutor interface {
	Do(ctx context.Context, key string, fn func() error) error
}
