package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStore_SetGet(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute)
	ctx := context.Background()

	s.Set(ctx, "k", 42)
	got, ok := s.Get(ctx, "k")
	if !ok || got != 42 {
		t.Fatalf("Get = %v, %v want 42, true", got, ok)
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute)
	now := time.Now()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	s.Set(ctx, "k", "v")
	now = now.Add(2 * time.Minute)

	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatal("entry should have expired")
	}
}

func TestStore_GetOrLoad_CachesSuccess(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute)
	ctx := context.Background()
	loads := 0

	for i := 0; i < 3; i++ {
		got, err := s.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
			loads++
			return "v", nil
		})
		if err != nil {
			t.Fatalf("GetOrLoad error: %v", err)
		}
		if got != "v" {
			t.Fatalf("GetOrLoad = %v, want v", got)
		}
	}

	if loads != 1 {
		t.Fatalf("loader ran %d times, want 1", loads)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute)
	ctx := context.Background()
	loads := 0
	boom := errors.New("provider down")

	for i := 0; i < 2; i++ {
		if _, err := s.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
			loads++
			return nil, boom
		}); !errors.Is(err, boom) {
			t.Fatalf("GetOrLoad error = %v, want %v", err, boom)
		}
	}

	if loads != 2 {
		t.Fatalf("loader ran %d times, want 2 (errors must not be cached)", loads)
	}
}
