package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/cache"
)

// counter returns a fetch that yields 1, 2, 3... and reports how often it ran.
func counter() (func(context.Context) (int, error), *int32) {
	var calls int32
	return func(context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}, &calls
}

func TestCache_GetOrFetch(t *testing.T) {
	c := cache.New[[]string]()
	calls := 0
	fetch := func(context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	v, err := c.GetOrFetch(context.Background(), "blogs", fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)

	v, err = c.GetOrFetch(context.Background(), "blogs", fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)
	assert.Equal(t, 1, calls)
}

func TestCache_Invalidate(t *testing.T) {
	c := cache.New[int]()
	fetch, _ := counter()

	v, _ := c.GetOrFetch(context.Background(), "k", fetch)
	assert.Equal(t, 1, v)

	c.Invalidate("k")
	v, _ = c.GetOrFetch(context.Background(), "k", fetch)
	assert.Equal(t, 2, v)
}

func TestCache_InvalidateAll(t *testing.T) {
	c := cache.New[int]()
	fetch, calls := counter()
	ctx := context.Background()

	_, _ = c.GetOrFetch(ctx, "a", fetch)
	_, _ = c.GetOrFetch(ctx, "b", fetch)
	_, _ = c.GetOrFetch(ctx, "a", fetch)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))

	c.InvalidateAll()
	_, _ = c.GetOrFetch(ctx, "a", fetch)
	_, _ = c.GetOrFetch(ctx, "b", fetch)
	assert.Equal(t, int32(4), atomic.LoadInt32(calls))
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	c := cache.New[int]()
	boom := errors.New("boom")

	_, err := c.GetOrFetch(context.Background(), "k", func(context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)

	v, err := c.GetOrFetch(context.Background(), "k", func(context.Context) (int, error) {
		return 5, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestCache_ConcurrentMissesShareFetch(t *testing.T) {
	c := cache.New[int]()
	var calls int32
	release := make(chan struct{})

	fetch := func(context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 7, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.GetOrFetch(context.Background(), "k", fetch)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, v := range results {
		assert.Equal(t, 7, v)
	}
}

func TestCache_CancelledCallerDoesNotFailOthers(t *testing.T) {
	c := cache.New[string]()
	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func(ctx context.Context) (string, error) {
		close(started)
		select {
		case <-release:
			return "list", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.GetOrFetch(firstCtx, "k", fetch)
		firstErr <- err
	}()
	<-started

	type result struct {
		v   string
		err error
	}
	second := make(chan result, 1)
	go func() {
		v, err := c.GetOrFetch(context.Background(), "k", fetch)
		second <- result{v, err}
	}()

	// Let the second caller join the in-flight fetch before the first leaves
	time.Sleep(20 * time.Millisecond)
	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, "list", got.v)

	// The shared fetch still populated the cache
	v, err := c.GetOrFetch(context.Background(), "k", func(context.Context) (string, error) {
		return "refetched", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "list", v)
}

func TestCache_InvalidateDuringFetchDropsStaleValue(t *testing.T) {
	c := cache.New[string]()
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan string)
	go func() {
		v, _ := c.GetOrFetch(context.Background(), "k", func(context.Context) (string, error) {
			close(started)
			<-release
			return "stale", nil
		})
		done <- v
	}()

	<-started
	c.Invalidate("k")
	close(release)
	assert.Equal(t, "stale", <-done)

	v, err := c.GetOrFetch(context.Background(), "k", func(context.Context) (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", v, "value fetched before invalidation must not be cached")
}
