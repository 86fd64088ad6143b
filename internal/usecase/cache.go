package usecase

import (
	"context"
	"fmt"

	"github.com/rmarques/futstats/internal/platform/cache"
)

// loadCached funnels a provider fetch through the shared TTL cache so that
// repeated reads inside the TTL window reuse one upstream call. A nil cache
// degrades to a direct call.
func loadCached[T any](ctx context.Context, store *cache.Store, key string, loader func(context.Context) (T, error)) (T, error) {
	if store == nil {
		return loader(ctx)
	}

	out, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	typed, ok := out.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected cached payload type %T for key %q", out, key)
	}

	return typed, nil
}
