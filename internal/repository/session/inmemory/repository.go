package inmemory

import (
	"log/slog"
	"sync"
	"time"

	"github.com/contentstudio/server/internal/repository/session"
)

type entry[V any] struct {
	value   V
	addedAt time.Time
}

type repo[V any] struct {
	entries map[string]entry[V]
	mu      sync.RWMutex
	now     func() time.Time
}

func NewRepo[V any]() *repo[V] {
	return &repo[V]{
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

func (r *repo[V]) Add(id string, value V) error {
	funcName := "session.inmemory.Add"
	r.mu.Lock()
	defer r.mu.Unlock()

	slog.Debug(funcName, "session_id", id)
	if _, ok := r.entries[id]; ok {
		slog.Info(funcName, "error", session.ErrAlreadyExists)
		return session.ErrAlreadyExists
	}

	r.entries[id] = entry[V]{value: value, addedAt: r.now()}

	return nil
}

func (r *repo[V]) Get(id string) (V, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		var zero V
		return zero, session.ErrNotFound
	}

	return e.value, nil
}

func (r *repo[V]) Remove(id string) error {
	funcName := "session.inmemory.Remove"
	r.mu.Lock()
	defer r.mu.Unlock()

	slog.Debug(funcName, "session_id", id)
	if _, ok := r.entries[id]; !ok {
		slog.Info(funcName, "error", session.ErrNotFound)
		return session.ErrNotFound
	}

	delete(r.entries, id)

	return nil
}

func (r *repo[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// RemoveExpired drops every entry added before deadline for which keep
// reports false and returns the removed ids.
func (r *repo[V]) RemoveExpired(deadline time.Time, keep func(V) bool) []string {
	funcName := "session.inmemory.RemoveExpired"
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []string
	for id, e := range r.entries {
		if !e.addedAt.Before(deadline) || keep(e.value) {
			continue
		}
		delete(r.entries, id)
		removed = append(removed, id)
	}

	if len(removed) > 0 {
		slog.Debug(funcName, "removed", removed)
	}

	return removed
}
