package memory

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"vetsoft/internal/ports/storage"
)

var (
	ErrNotFound = storage.ErrNotFound

	errIDRequired    = errors.New("id required")
	errAlreadyExists = errors.New("already exists")
)

// table es el mapa por id que comparten todos los repos en memoria.
// Guarda el orden de inserción para listar de forma estable.
type table[T any] struct {
	mu   sync.RWMutex
	byID map[string]T
	seq  map[string]uint64
	next uint64
}

func newTable[T any]() *table[T] {
	return &table[T]{
		byID: make(map[string]T),
		seq:  make(map[string]uint64),
	}
}

func (t *table[T]) create(id string, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if strings.TrimSpace(id) == "" {
		return errIDRequired
	}
	if _, exists := t.byID[id]; exists {
		return errAlreadyExists
	}
	t.next++
	t.byID[id] = v
	t.seq[id] = t.next
	return nil
}

// update pisa el registro completo: last write wins.
func (t *table[T]) update(id string, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if strings.TrimSpace(id) == "" {
		return errIDRequired
	}
	if _, exists := t.byID[id]; !exists {
		return ErrNotFound
	}
	t.byID[id] = v
	return nil
}

func (t *table[T]) get(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.byID[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]string, 0, len(t.byID))
	for id := range t.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return t.seq[ids[i]] < t.seq[ids[j]]
	})

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.byID[id])
	}
	return out
}

func (t *table[T]) delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.byID[id]; !exists {
		return ErrNotFound
	}
	delete(t.byID, id)
	delete(t.seq, id)
	return nil
}
