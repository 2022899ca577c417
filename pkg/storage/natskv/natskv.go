// Package natskv implements storage.Storage on a NATS JetStream key-value
// bucket. Each page is one key named after its ID; the KV revision doubles as
// the page version so updates are revision-checked writes.
package natskv

import (
	"context"
	"errors"
	"fmt"
	"linkify/pkg/domain"
	"linkify/pkg/storage"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go/jetstream"
)

// KV implements storage.Storage on top of a jetstream.KeyValue bucket.
type KV struct {
	bucket jetstream.KeyValue
	now    func() time.Time
}

var _ storage.Storage = (*KV)(nil)

// New wraps an existing bucket. The bucket lifecycle is owned by the caller.
func New(bucket jetstream.KeyValue) *KV {
	return &KV{bucket: bucket, now: time.Now}
}

// record is the JSON document stored under each key.
type record struct {
	ID               domain.PageID       `json:"id"`
	Owner            domain.Owner        `json:"owner"`
	BioInfo          domain.BioInfo      `json:"bioInfo"`
	Links            []domain.Link       `json:"links"`
	SocialMediaLinks []domain.SocialLink `json:"socialMediaLinks"`
	PageColors       domain.PageColors   `json:"pageColors,omitempty"`
	Verified         bool                `json:"verified"`
	RenamedFrom      domain.PageID       `json:"renamedFrom,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

func encode(page domain.Page) ([]byte, error) {
	rec := record{
		ID:               page.ID,
		Owner:            page.Owner,
		BioInfo:          page.BioInfo,
		Links:            page.Links,
		SocialMediaLinks: page.SocialMediaLinks,
		PageColors:       page.PageColors,
		Verified:         page.Verified,
		RenamedFrom:      page.RenamedFrom,
		CreatedAt:        page.CreatedAt,
		UpdatedAt:        page.UpdatedAt,
	}
	if rec.Links == nil {
		rec.Links = []domain.Link{}
	}
	if rec.SocialMediaLinks == nil {
		rec.SocialMediaLinks = []domain.SocialLink{}
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("could not marshal page record: %w", err)
	}

	return b, nil
}

func decode(entry jetstream.KeyValueEntry) (*domain.Page, error) {
	var rec record
	if err := json.Unmarshal(entry.Value(), &rec); err != nil {
		return nil, fmt.Errorf("could not unmarshal page record %s: %w", entry.Key(), err)
	}

	return &domain.Page{
		ID:               rec.ID,
		Owner:            rec.Owner,
		BioInfo:          rec.BioInfo,
		Links:            rec.Links,
		SocialMediaLinks: rec.SocialMediaLinks,
		PageColors:       rec.PageColors,
		Verified:         rec.Verified,
		RenamedFrom:      rec.RenamedFrom,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
		Version:          entry.Revision(),
	}, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrKeyDeleted)
}

// isWrongRevision reports whether err is the server rejecting a write whose
// expected last sequence did not match.
func isWrongRevision(err error) bool {
	var apiErr *jetstream.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode == jetstream.JSErrCodeStreamWrongLastSequence {
		return true
	}

	return strings.Contains(err.Error(), "wrong last sequence")
}

func (k *KV) Close() error {
	return nil
}

// CreatePage relies on the bucket's Create which only succeeds for absent or
// deleted keys.
func (k *KV) CreatePage(ctx context.Context, page domain.Page) (*domain.Page, error) {
	page.UpdatedAt = k.now().UTC()
	value, err := encode(page)
	if err != nil {
		return nil, err
	}

	rev, err := k.bucket.Create(ctx, string(page.ID), value)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyExists) {
			return nil, storage.ErrPageExists
		}

		return nil, fmt.Errorf("could not create page in kv: %w", err)
	}

	page.Version = rev

	return &page, nil
}

func (k *KV) PageByID(ctx context.Context, id domain.PageID) (*domain.Page, error) {
	entry, err := k.bucket.Get(ctx, string(id))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("could not get page from kv: %w", err)
	}

	return decode(entry)
}

func (k *KV) OwnerPage(ctx context.Context, owner domain.Owner, id domain.PageID) (*domain.Page, error) {
	page, err := k.PageByID(ctx, id)
	if err != nil || page == nil || page.Owner != owner {
		return nil, err
	}

	return page, nil
}

// UpdatePage writes with the expected revision. Ownership is checked against
// the current entry first; the revision check then covers any interleaving
// writer including a delete and re-create.
func (k *KV) UpdatePage(ctx context.Context, page domain.Page) (*domain.Page, error) {
	current, err := k.PageByID(ctx, page.ID)
	if err != nil {
		return nil, err
	}
	if current == nil || current.Owner != page.Owner || current.Version != page.Version {
		return nil, storage.ErrVersionMismatch
	}

	page.CreatedAt = current.CreatedAt
	page.UpdatedAt = k.now().UTC()
	value, err := encode(page)
	if err != nil {
		return nil, err
	}

	rev, err := k.bucket.Update(ctx, string(page.ID), value, page.Version)
	if err != nil {
		if isWrongRevision(err) {
			return nil, storage.ErrVersionMismatch
		}

		return nil, fmt.Errorf("could not update page in kv: %w", err)
	}

	page.Version = rev

	return &page, nil
}

// DeletePage deletes the key guarded by the revision that was checked for
// ownership. A concurrent write in between makes the delete fail instead of
// removing a record that was not inspected.
func (k *KV) DeletePage(ctx context.Context, owner domain.Owner, id domain.PageID) (*domain.Page, error) {
	page, err := k.OwnerPage(ctx, owner, id)
	if err != nil || page == nil {
		return nil, err
	}

	if err := k.bucket.Delete(ctx, string(id), jetstream.LastRevision(page.Version)); err != nil {
		if isWrongRevision(err) {
			return nil, storage.ErrVersionMismatch
		}

		return nil, fmt.Errorf("could not delete page from kv: %w", err)
	}

	return page, nil
}

// DeletePageVersion deletes the key only while its revision equals version.
func (k *KV) DeletePageVersion(ctx context.Context,
	owner domain.Owner,
	id domain.PageID,
	version uint64) (*domain.Page, error) {
	page, err := k.OwnerPage(ctx, owner, id)
	if err != nil || page == nil {
		return nil, err
	}
	if page.Version != version {
		return nil, storage.ErrVersionMismatch
	}

	if err := k.bucket.Delete(ctx, string(id), jetstream.LastRevision(version)); err != nil {
		if isWrongRevision(err) {
			return nil, storage.ErrVersionMismatch
		}

		return nil, fmt.Errorf("could not delete page from kv: %w", err)
	}

	return page, nil
}

// OwnerPages scans every key in the bucket and keeps the owner's pages,
// ordered by creation time.
func (k *KV) OwnerPages(ctx context.Context, owner domain.Owner) ([]domain.Page, error) {
	lister, err := k.bucket.ListKeys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("could not list kv keys: %w", err)
	}
	defer func() { _ = lister.Stop() }()

	var out []domain.Page
	for key := range lister.Keys() {
		page, err := k.PageByID(ctx, domain.PageID(key))
		if err != nil {
			return nil, err
		}
		// deleted between listing and reading
		if page == nil || page.Owner != owner {
			continue
		}

		out = append(out, *page)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}

		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
