// Package memory provides an in-process assets.Store for local runs.
package memory

import (
	"context"
	"linkify/pkg/assets"
	"sync"
)

type Store struct {
	mu      sync.RWMutex
	objects map[string]assets.Object
}

var _ assets.Store = (*Store)(nil)

func New() *Store {
	return &Store{objects: make(map[string]assets.Object)}
}

func (s *Store) Put(_ context.Context, obj assets.Object) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj.Data = append([]byte(nil), obj.Data...)
	s.objects[obj.Key] = obj

	return nil
}

func (s *Store) Get(_ context.Context, key string) (*assets.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, assets.ErrNotFound
	}
	obj.Data = append([]byte(nil), obj.Data...)

	return &obj, nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.objects, key)

	return nil
}
