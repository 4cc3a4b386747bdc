// Package memory keeps entities in process memory. It satisfies the same contracts as
// the postgres repositories, including their error values, and is used by tests and by
// DB_DRIVER=memory.
package memory

import (
	"sync"
	"time"

	"gorm.io/gorm"
)

// store is a mutex guarded map of entity copies. Callers never share memory with it.
type store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
	clone func(T) T
}

func newStore[T any](clone func(T) T) *store[T] {
	return &store[T]{
		items: make(map[string]T),
		clone: clone,
	}
}

// insert expects the caller to hold the write lock.
func (s *store[T]) insert(id string, entity T) error {
	if _, exists := s.items[id]; exists {
		return gorm.ErrDuplicatedKey
	}
	s.items[id] = s.clone(entity)
	s.order = append(s.order, id)
	return nil
}

func (s *store[T]) get(id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := s.clone(entity)
	return &c, nil
}

func (s *store[T]) replace(id string, entity T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.items[id] = s.clone(entity)
	return nil
}

func (s *store[T]) all() *[]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entities := make([]T, 0, len(s.order))
	for _, id := range s.order {
		entities = append(entities, s.clone(s.items[id]))
	}
	return &entities
}

func stamp(created, updated *time.Time) {
	now := time.Now()
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = now
	}
}
