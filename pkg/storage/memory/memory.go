// Package memory provides an in-process implementation of storage.Storage.
// It keeps the same conditional-create and compare-and-swap semantics as the
// persistent backends and is used for local runs and tests.
package memory

import (
	"context"
	"linkify/pkg/domain"
	"linkify/pkg/storage"
	"sync"
	"time"
)

// Memory is a mutex-guarded map of page records keyed by page ID. Insertion
// order is kept so OwnerPages returns a stable scan order.
type Memory struct {
	mu    sync.RWMutex
	pages map[domain.PageID]domain.Page
	order []domain.PageID

	now func() time.Time
}

var _ storage.Storage = (*Memory)(nil)

// New returns an empty in-memory storage.
func New() *Memory {
	return &Memory{
		pages: make(map[domain.PageID]domain.Page),
		now:   time.Now,
	}
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) CreatePage(_ context.Context, page domain.Page) (*domain.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pages[page.ID]; ok {
		return nil, storage.ErrPageExists
	}

	page = page.Clone()
	page.Version = 1
	page.UpdatedAt = m.now().UTC()
	m.pages[page.ID] = page
	m.order = append(m.order, page.ID)

	out := page.Clone()

	return &out, nil
}

func (m *Memory) PageByID(_ context.Context, id domain.PageID) (*domain.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	page, ok := m.pages[id]
	if !ok {
		return nil, nil
	}

	out := page.Clone()

	return &out, nil
}

func (m *Memory) OwnerPage(_ context.Context, owner domain.Owner, id domain.PageID) (*domain.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	page, ok := m.pages[id]
	if !ok || page.Owner != owner {
		return nil, nil
	}

	out := page.Clone()

	return &out, nil
}

// UpdatePage swaps the record when (ID, Owner, Version) all match.
func (m *Memory) UpdatePage(_ context.Context, page domain.Page) (*domain.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.pages[page.ID]
	if !ok || current.Owner != page.Owner || current.Version != page.Version {
		return nil, storage.ErrVersionMismatch
	}

	page = page.Clone()
	page.CreatedAt = current.CreatedAt
	page.Version = current.Version + 1
	page.UpdatedAt = m.now().UTC()
	m.pages[page.ID] = page

	out := page.Clone()

	return &out, nil
}

func (m *Memory) DeletePage(_ context.Context, owner domain.Owner, id domain.PageID) (*domain.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	page, ok := m.pages[id]
	if !ok || page.Owner != owner {
		return nil, nil
	}
	m.remove(id)

	return &page, nil
}

func (m *Memory) DeletePageVersion(_ context.Context,
	owner domain.Owner,
	id domain.PageID,
	version uint64) (*domain.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	page, ok := m.pages[id]
	if !ok || page.Owner != owner {
		return nil, nil
	}
	if page.Version != version {
		return nil, storage.ErrVersionMismatch
	}
	m.remove(id)

	return &page, nil
}

// remove drops id from the map and the scan order. m.mu must be held.
func (m *Memory) remove(id domain.PageID) {
	delete(m.pages, id)
	for i, pageID := range m.order {
		if pageID == id {
			m.order = append(m.order[:i], m.order[i+1:]...)

			break
		}
	}
}

func (m *Memory) OwnerPages(_ context.Context, owner domain.Owner) ([]domain.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.Page
	for _, id := range m.order {
		if page := m.pages[id]; page.Owner == owner {
			out = append(out, page.Clone())
		}
	}

	return out, nil
}
