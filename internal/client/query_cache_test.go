package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCacheFetch(t *testing.T) {
	q := NewQueryCache()
	ctx := context.Background()

	var calls int
	fn := func(context.Context) (any, error) {
		calls++
		return calls, nil
	}

	v, err := q.Fetch(ctx, "k", fn)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = q.Fetch(ctx, "k", fn)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "success is cached")

	e := q.Read("k")
	assert.Equal(t, StateSuccess, e.State)
	assert.Equal(t, 1, e.Data)
	assert.False(t, e.UpdatedAt.IsZero())

	q.Invalidate("k")
	assert.Equal(t, StateIdle, q.Read("k").State)

	v, err = q.Fetch(ctx, "k", fn)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestQueryCacheErrorsAreRetried(t *testing.T) {
	q := NewQueryCache()
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := q.Fetch(ctx, "k", func(context.Context) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateError, q.Read("k").State)
	assert.ErrorIs(t, q.Read("k").Err, boom)

	v, err := q.Fetch(ctx, "k", func(context.Context) (any, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestQueryCacheCollapsesConcurrentMisses(t *testing.T) {
	q := NewQueryCache()
	release := make(chan struct{})
	var calls atomic.Int32

	fn := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "data", nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([]any, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := q.Fetch(context.Background(), "k", fn)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	require.Eventually(t, func() bool { return q.Read("k").State == StateLoading }, time.Second, time.Millisecond)
	// Give the remaining goroutines time to join the flight.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
	for _, v := range results {
		assert.Equal(t, "data", v)
	}
}

func TestQueryCacheInvalidateDuringFetch(t *testing.T) {
	q := NewQueryCache()
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = q.Fetch(context.Background(), "k", func(context.Context) (any, error) {
			close(started)
			<-release
			return "stale", nil
		})
	}()

	<-started
	q.Invalidate("k")
	close(release)
	<-done

	assert.Equal(t, StateIdle, q.Read("k").State, "result of a pre-invalidation fetch is dropped")

	v, err := q.Fetch(context.Background(), "k", func(context.Context) (any, error) { return "fresh", nil })
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
}

func TestQueryCacheCallerCancelDoesNotFailJoiners(t *testing.T) {
	q := NewQueryCache()
	started := make(chan struct{})
	release := make(chan struct{})

	fn := func(ctx context.Context) (any, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return "data", nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := q.Fetch(ctx, "k", fn)
		firstErr <- err
	}()
	<-started

	joined := make(chan any, 1)
	go func() {
		v, err := q.Fetch(context.Background(), "k", fn)
		assert.NoError(t, err)
		joined <- v
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	assert.Equal(t, "data", <-joined)

	e := q.Read("k")
	assert.Equal(t, StateSuccess, e.State)
	assert.Equal(t, "data", e.Data)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "error", StateError.String())
	assert.Equal(t, "unknown", State(42).String())
}
