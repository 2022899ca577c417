// Package storagetest contains a behavioural test suite shared by every
// storage.PageStorage backend.
package storagetest

import (
	"context"
	"fmt"
	"linkify/pkg/domain"
	"linkify/pkg/storage"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// NewPage returns a minimal valid page for owner with a random ID.
func NewPage(owner domain.Owner) domain.Page {
	return domain.Page{
		ID:      domain.PageID("p-" + uuid.NewString()[:8]),
		Owner:   owner,
		BioInfo: domain.BioInfo{Name: "Alice"},
		Links: []domain.Link{
			{ID: uuid.NewString(), URL: "https://example.com", Name: "Example"},
		},
		SocialMediaLinks: []domain.SocialLink{},
		CreatedAt:        time.Now().UTC().Truncate(time.Millisecond),
	}
}

// RunPageStorage runs the suite against the backend returned as strg.
// Every subtest gets pages with unique IDs so a single backend instance can be
// shared.
func RunPageStorage(t *testing.T, strg storage.PageStorage) {
	t.Helper()

	ctx := context.Background()

	t.Run("create and read", func(t *testing.T) {
		owner := domain.Owner(uuid.NewString())
		page := NewPage(owner)
		page.PageColors = domain.PageColors{domain.ColorBackground: "#ffffff"}

		created, err := strg.CreatePage(ctx, page)
		require.NoError(t, err)
		require.Equal(t, page.ID, created.ID)
		require.NotZero(t, created.Version)

		got, err := strg.PageByID(ctx, page.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, page.BioInfo, got.BioInfo)
		require.Equal(t, page.Links, got.Links)
		require.Equal(t, page.PageColors, got.PageColors)
		require.True(t, page.CreatedAt.Equal(got.CreatedAt))

		got, err = strg.OwnerPage(ctx, owner, page.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		got, err = strg.OwnerPage(ctx, "someone-else", page.ID)
		require.NoError(t, err)
		require.Nil(t, got)

		got, err = strg.PageByID(ctx, "missing-page")
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("create never overwrites", func(t *testing.T) {
		page := NewPage(domain.Owner(uuid.NewString()))
		_, err := strg.CreatePage(ctx, page)
		require.NoError(t, err)

		other := page
		other.Owner = domain.Owner(uuid.NewString())
		other.BioInfo.Name = "Mallory"
		_, err = strg.CreatePage(ctx, other)
		require.ErrorIs(t, err, storage.ErrPageExists)

		got, err := strg.PageByID(ctx, page.ID)
		require.NoError(t, err)
		require.Equal(t, page.Owner, got.Owner)
		require.Equal(t, "Alice", got.BioInfo.Name)
	})

	t.Run("concurrent create has one winner", func(t *testing.T) {
		id := domain.PageID("race-" + uuid.NewString()[:8])

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				page := NewPage(domain.Owner(fmt.Sprintf("owner-%d", i)))
				page.ID = id
				_, errs[i] = strg.CreatePage(ctx, page)
			}(i)
		}
		wg.Wait()

		wins := 0
		for _, err := range errs {
			if err == nil {
				wins++

				continue
			}
			require.ErrorIs(t, err, storage.ErrPageExists)
		}
		require.Equal(t, 1, wins)
	})

	t.Run("update is compare and swap", func(t *testing.T) {
		owner := domain.Owner(uuid.NewString())
		created, err := strg.CreatePage(ctx, NewPage(owner))
		require.NoError(t, err)

		first := created.Clone()
		first.BioInfo.Name = "First"
		updated, err := strg.UpdatePage(ctx, first)
		require.NoError(t, err)
		require.Greater(t, updated.Version, created.Version)
		require.Equal(t, "First", updated.BioInfo.Name)

		stale := created.Clone()
		stale.BioInfo.Name = "Stale"
		_, err = strg.UpdatePage(ctx, stale)
		require.ErrorIs(t, err, storage.ErrVersionMismatch)

		foreign := updated.Clone()
		foreign.Owner = "someone-else"
		_, err = strg.UpdatePage(ctx, foreign)
		require.ErrorIs(t, err, storage.ErrVersionMismatch)

		got, err := strg.PageByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "First", got.BioInfo.Name)
		require.Equal(t, updated.Version, got.Version)
	})

	t.Run("update of missing page", func(t *testing.T) {
		page := NewPage(domain.Owner(uuid.NewString()))
		page.Version = 1
		_, err := strg.UpdatePage(ctx, page)
		require.ErrorIs(t, err, storage.ErrVersionMismatch)
	})

	t.Run("delete", func(t *testing.T) {
		owner := domain.Owner(uuid.NewString())
		created, err := strg.CreatePage(ctx, NewPage(owner))
		require.NoError(t, err)

		deleted, err := strg.DeletePage(ctx, "someone-else", created.ID)
		require.NoError(t, err)
		require.Nil(t, deleted)

		deleted, err = strg.DeletePage(ctx, owner, created.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)
		require.Equal(t, created.ID, deleted.ID)

		got, err := strg.PageByID(ctx, created.ID)
		require.NoError(t, err)
		require.Nil(t, got)

		deleted, err = strg.DeletePage(ctx, owner, created.ID)
		require.NoError(t, err)
		require.Nil(t, deleted)
	})

	t.Run("delete guarded by version", func(t *testing.T) {
		owner := domain.Owner(uuid.NewString())
		created, err := strg.CreatePage(ctx, NewPage(owner))
		require.NoError(t, err)

		edit := created.Clone()
		edit.BioInfo.Name = "Edited"
		updated, err := strg.UpdatePage(ctx, edit)
		require.NoError(t, err)

		_, err = strg.DeletePageVersion(ctx, owner, created.ID, created.Version)
		require.ErrorIs(t, err, storage.ErrVersionMismatch)

		deleted, err := strg.DeletePageVersion(ctx, "someone-else", created.ID, updated.Version)
		require.NoError(t, err)
		require.Nil(t, deleted)

		got, err := strg.PageByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "Edited", got.BioInfo.Name)

		deleted, err = strg.DeletePageVersion(ctx, owner, created.ID, updated.Version)
		require.NoError(t, err)
		require.NotNil(t, deleted)
		require.Equal(t, "Edited", deleted.BioInfo.Name)

		deleted, err = strg.DeletePageVersion(ctx, owner, created.ID, updated.Version)
		require.NoError(t, err)
		require.Nil(t, deleted)
	})

	t.Run("owner pages", func(t *testing.T) {
		owner := domain.Owner(uuid.NewString())
		for range 3 {
			_, err := strg.CreatePage(ctx, NewPage(owner))
			require.NoError(t, err)
		}
		_, err := strg.CreatePage(ctx, NewPage(domain.Owner(uuid.NewString())))
		require.NoError(t, err)

		pages, err := strg.OwnerPages(ctx, owner)
		require.NoError(t, err)
		require.Len(t, pages, 3)
		for _, p := range pages {
			require.Equal(t, owner, p.Owner)
		}

		pages, err = strg.OwnerPages(ctx, domain.Owner(uuid.NewString()))
		require.NoError(t, err)
		require.Empty(t, pages)
	})

	t.Run("renamed from marker survives", func(t *testing.T) {
		page := NewPage(domain.Owner(uuid.NewString()))
		page.RenamedFrom = "old-page"
		_, err := strg.CreatePage(ctx, page)
		require.NoError(t, err)

		got, err := strg.PageByID(ctx, page.ID)
		require.NoError(t, err)
		require.Equal(t, domain.PageID("old-page"), got.RenamedFrom)
	})
}
