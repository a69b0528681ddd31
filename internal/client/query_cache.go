package client

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// State is the lifecycle of a cached query.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is a snapshot of one cached query.
type Entry struct {
	State     State
	Data      any
	Err       error
	UpdatedAt time.Time
}

// fetchTimeout bounds a shared fetch once it no longer follows a caller's ctx.
const fetchTimeout = 30 * time.Second

// QueryCache holds query results by key. A successful result is served until
// the key is invalidated; failed results are retried on the next Fetch.
// Concurrent fetches of the same key share a single call.
type QueryCache struct {
	mu      sync.Mutex
	entries map[string]*Entry
	gens    map[string]uint64
	group   singleflight.Group
}

func NewQueryCache() *QueryCache {
	return &QueryCache{
		entries: make(map[string]*Entry),
		gens:    make(map[string]uint64),
	}
}

// Read returns the current entry for key without fetching.
func (q *QueryCache) Read(key string) Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	if e, ok := q.entries[key]; ok {
		return *e
	}
	return Entry{State: StateIdle}
}

// Fetch returns the cached value for key, calling fn on a miss.
//
// The shared call runs detached from any one caller's context, bounded by
// fetchTimeout. A caller whose ctx ends first gets ctx.Err() while the call
// keeps going for everyone else.
func (q *QueryCache) Fetch(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	q.mu.Lock()
	e, ok := q.entries[key]
	if ok && e.State == StateSuccess {
		data := e.Data
		q.mu.Unlock()
		return data, nil
	}
	if !ok {
		e = &Entry{}
		q.entries[key] = e
	}
	e.State = StateLoading
	gen := q.gens[key]
	q.mu.Unlock()

	// The generation is part of the flight key so a fetch started after an
	// invalidation never joins one started before it.
	ch := q.group.DoChan(key+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		data, err := fn(fetchCtx)

		q.mu.Lock()
		defer q.mu.Unlock()
		if q.gens[key] == gen {
			next := &Entry{State: StateSuccess, Data: data, UpdatedAt: time.Now()}
			if err != nil {
				next = &Entry{State: StateError, Err: err, UpdatedAt: time.Now()}
			}
			q.entries[key] = next
		}
		return data, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// Invalidate drops key so the next Fetch goes to the server. Results of
// fetches already in flight are not stored.
func (q *QueryCache) Invalidate(key string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.gens[key]++
	delete(q.entries, key)
}
