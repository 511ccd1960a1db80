package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Fetcher issues the one fixed query a listing is built around.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Snapshot is a point-in-time copy of a listing's state.
type Snapshot[T any] struct {
	Items   []T
	Loading bool
	// Loaded is true once at least one fetch has succeeded.
	Loaded bool
	// Stale is true when the latest fetch failed and Items come from an
	// earlier success.
	Stale bool
}

// Listing holds a fetched collection in local state.
//
// Each Load issues one query; concurrent loads are not coalesced. When loads
// overlap only the most recently started one may write state, and nothing is
// written after Close.
type Listing[T any] struct {
	name     string
	fetch    Fetcher[T]
	notifier Notifier

	mu      sync.Mutex
	items   []T
	loading bool
	loaded  bool
	stale   bool
	gen     uint64
	closed  bool
}

// NewListing creates a listing named name (used in logs and messages).
// A nil notifier discards notifications.
func NewListing[T any](name string, fetch Fetcher[T], notifier Notifier) *Listing[T] {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Listing[T]{name: name, fetch: fetch, notifier: notifier}
}

// Load fetches the collection and replaces local state on success. On failure
// the previous items are kept and marked stale; before the first success that
// means an empty list.
func (l *Listing[T]) Load(ctx context.Context) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.gen++
	gen := l.gen
	l.loading = true
	l.mu.Unlock()

	items, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || gen != l.gen {
		slog.Debug("listing result discarded", "listing", l.name, "closed", l.closed)
		return
	}
	l.loading = false

	if err != nil {
		l.stale = l.loaded
		if errors.Is(err, context.Canceled) {
			return
		}
		slog.Error("listing fetch failed", "listing", l.name, "error", err)
		l.notifier.Notify(ctx, Toast{Level: LevelError, Message: "Could not load " + l.name + "."})
		return
	}

	l.items = items
	l.loaded = true
	l.stale = false
}

// Close tears the listing down. Fetches still in flight are discarded when
// they return.
func (l *Listing[T]) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (l *Listing[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]T, len(l.items))
	copy(items, l.items)
	return Snapshot[T]{
		Items:   items,
		Loading: l.loading,
		Loaded:  l.loaded,
		Stale:   l.stale,
	}
}
