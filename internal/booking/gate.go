package booking

import (
	"context"
	"sync"
)

// Gate serializes booking writes that share a key (court and day).
// Acquire blocks until the key is free or ctx is done; the returned release
// function must be called exactly once.
type Gate interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// GateKey is the key under which writes for a court's day are serialized.
func GateKey(courtID, day string) string {
	return courtID + "|" + day
}

type localEntry struct {
	sem  chan struct{}
	refs int
}

// LocalGate is an in-process Gate. It only protects a single replica.
type LocalGate struct {
	mu      sync.Mutex
	entries map[string]*localEntry
}

func NewLocalGate() *LocalGate {
	return &LocalGate{entries: make(map[string]*localEntry)}
}

func (g *LocalGate) Acquire(ctx context.Context, key string) (func(), error) {
	g.mu.Lock()
	e, ok := g.entries[key]
	if !ok {
		e = &localEntry{sem: make(chan struct{}, 1)}
		g.entries[key] = e
	}
	e.refs++
	g.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		g.unref(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			g.unref(key, e)
		})
	}, nil
}

func (g *LocalGate) unref(key string, e *localEntry) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(g.entries, key)
	}
}
