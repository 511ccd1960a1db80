package dashboard

import (
	"context"
	"sync"
)

// Level is the severity of a toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Toast is a transient, non-blocking user notification.
type Toast struct {
	Level   Level
	Message string
}

// Notifier receives toasts from components.
type Notifier interface {
	Notify(ctx context.Context, t Toast)
}

// Toasts collects notifications raised while handling one request.
type Toasts struct {
	mu    sync.Mutex
	items []Toast
}

// Notify appends t.
func (q *Toasts) Notify(_ context.Context, t Toast) {
	q.mu.Lock()
	q.items = append(q.items, t)
	q.mu.Unlock()
}

// Drain returns the collected toasts and empties the queue.
func (q *Toasts) Drain() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Toast) {}
