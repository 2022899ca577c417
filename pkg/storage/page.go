package storage

import (
	"context"
	"linkify/pkg/domain"
)

// PageStorage is a keyed store of page records. Backends must provide an
// atomic insert-if-absent on the page ID and a compare-and-swap update keyed
// by the record version.
type PageStorage interface {
	// CreatePage stores page only if no page with the same ID exists and
	// returns the stored record. It returns ErrPageExists otherwise and never
	// overwrites.
	CreatePage(ctx context.Context, page domain.Page) (*domain.Page, error)
	// PageByID returns the page with the given ID regardless of its owner, or
	// nil when no such page exists.
	PageByID(ctx context.Context, id domain.PageID) (*domain.Page, error)
	// OwnerPage returns the page with the given ID if it belongs to owner, or
	// nil otherwise.
	OwnerPage(ctx context.Context, owner domain.Owner, id domain.PageID) (*domain.Page, error)
	// UpdatePage replaces the mutable fields of the stored record identified by
	// (page.ID, page.Owner) if its version still equals page.Version, and
	// returns the stored record with the incremented version. It returns
	// ErrVersionMismatch when no record matches.
	UpdatePage(ctx context.Context, page domain.Page) (*domain.Page, error)
	// DeletePage removes the page with the given ID if it belongs to owner and
	// returns the removed record, or nil when there was nothing to remove.
	// Backends whose delete is guarded by the record version may return
	// ErrVersionMismatch when the record changed concurrently.
	DeletePage(ctx context.Context, owner domain.Owner, id domain.PageID) (*domain.Page, error)
	// DeletePageVersion removes the owner's page only while its version still
	// equals version and returns the removed record. It returns nil when there
	// is no such page and ErrVersionMismatch when the page changed since
	// version was read.
	DeletePageVersion(ctx context.Context,
		owner domain.Owner,
		id domain.PageID,
		version uint64) (*domain.Page, error)
	// OwnerPages returns every page owned by owner in the backend's natural
	// scan order.
	OwnerPages(ctx context.Context, owner domain.Owner) ([]domain.Page, error)
}
