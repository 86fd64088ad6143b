// Package kvstore persists small named blobs. The account layer keeps its
// whole dataset under a handful of keys, so the interface stays a plain
// get/set/delete with no iteration.
package kvstore

import "context"

type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
