package pages_test

import (
	"context"
	"linkify/pkg/domain"
	"linkify/pkg/serrors"
	"linkify/internal/pages"
	assetsmemory "linkify/pkg/assets/memory"
	"linkify/pkg/storage/memory"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenamePage(t *testing.T) {
	ctx := context.Background()
	svc, strg := newTestPages(t)
	original := createPage(t, svc, alice, "alice")
	link, err := svc.AddLink(ctx, alice, "alice", domain.Link{Name: "Site", URL: "https://a.example"})
	require.NoError(t, err)

	renamed, err := svc.RenamePage(ctx, alice, "alice", "alice-new")
	require.NoError(t, err)
	require.Equal(t, domain.PageID("alice-new"), renamed.ID)
	require.Equal(t, alice, renamed.Owner)
	require.Equal(t, original.CreatedAt, renamed.CreatedAt)
	require.Equal(t, []domain.Link{*link}, renamed.Links)
	require.Empty(t, renamed.RenamedFrom)

	available, err := svc.CheckAvailability(ctx, "alice")
	require.NoError(t, err)
	require.True(t, available)

	stored, err := strg.PageByID(ctx, "alice-new")
	require.NoError(t, err)
	require.Empty(t, stored.RenamedFrom)

	list, err := svc.ListPages(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, domain.PageID("alice-new"), list[0].ID)
}

func TestRenamePage_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestPages(t)
	createPage(t, svc, alice, "alice")
	createPage(t, svc, bob, "bob")

	_, err := svc.RenamePage(ctx, alice, "alice", "bob")
	requireKind(t, err, serrors.ErrConflict)

	_, err = svc.RenamePage(ctx, alice, "alice", "B")
	requireKind(t, err, serrors.ErrInvalidArgument)

	_, err = svc.RenamePage(ctx, alice, "missing", "fresh")
	requireKind(t, err, serrors.ErrNotFound)

	same, err := svc.RenamePage(ctx, alice, "alice", "alice")
	require.NoError(t, err)
	require.Equal(t, domain.PageID("alice"), same.ID)

	// both pages untouched
	for id, owner := range map[domain.PageID]domain.Owner{"alice": alice, "bob": bob} {
		page, err := svc.GetPage(ctx, owner, id)
		require.NoError(t, err)
		require.Equal(t, owner, page.Owner)
	}
}

// leaveInterruptedRename writes the first phase of a rename of id to newID
// directly to the storage, as if the process died right after it.
func leaveInterruptedRename(t *testing.T, strg interface {
	PageByID(ctx context.Context, id domain.PageID) (*domain.Page, error)
	CreatePage(ctx context.Context, page domain.Page) (*domain.Page, error)
}, id, newID domain.PageID) {
	t.Helper()
	ctx := context.Background()

	source, err := strg.PageByID(ctx, id)
	require.NoError(t, err)
	copied := source.Clone()
	copied.ID = newID
	copied.RenamedFrom = id
	_, err = strg.CreatePage(ctx, copied)
	require.NoError(t, err)
}

func TestRenamePage_RetryCompletesInterruptedRename(t *testing.T) {
	ctx := context.Background()
	svc, strg := newTestPages(t)
	createPage(t, svc, alice, "alice")
	leaveInterruptedRename(t, strg, "alice", "alice-new")

	renamed, err := svc.RenamePage(ctx, alice, "alice", "alice-new")
	require.NoError(t, err)
	require.Equal(t, domain.PageID("alice-new"), renamed.ID)
	require.Empty(t, renamed.RenamedFrom)

	gone, err := strg.PageByID(ctx, "alice")
	require.NoError(t, err)
	require.Nil(t, gone)

	// the marker is cleared, so the finished rename is not repeated
	_, err = svc.RenamePage(ctx, alice, "alice", "alice-new")
	requireKind(t, err, serrors.ErrNotFound)
}

func TestRenamePage_RetryAfterSourceDeleted(t *testing.T) {
	ctx := context.Background()
	svc, strg := newTestPages(t)
	createPage(t, svc, alice, "alice")
	leaveInterruptedRename(t, strg, "alice", "alice-new")
	_, err := strg.DeletePage(ctx, alice, "alice")
	require.NoError(t, err)

	renamed, err := svc.RenamePage(ctx, alice, "alice", "alice-new")
	require.NoError(t, err)
	require.Equal(t, domain.PageID("alice-new"), renamed.ID)

	stored, err := strg.PageByID(ctx, "alice-new")
	require.NoError(t, err)
	require.Empty(t, stored.RenamedFrom)
}

func TestRenamePage_CopyOfAnotherPageIsAConflict(t *testing.T) {
	ctx := context.Background()
	svc, strg := newTestPages(t)
	createPage(t, svc, alice, "alice")
	createPage(t, svc, alice, "other")
	leaveInterruptedRename(t, strg, "other", "alice-new")

	_, err := svc.RenamePage(ctx, alice, "alice", "alice-new")
	requireKind(t, err, serrors.ErrConflict)
}

func TestListPages_RepairsInterruptedRename(t *testing.T) {
	ctx := context.Background()
	svc, strg := newTestPages(t)
	createPage(t, svc, alice, "alice")
	leaveInterruptedRename(t, strg, "alice", "alice-new")

	// an edit to the source after the copy was written must survive
	_, err := svc.UpdatePageInfo(ctx, alice, "alice", domain.BioInfo{Name: "Edited"})
	require.NoError(t, err)

	list, err := svc.ListPages(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, domain.PageID("alice-new"), list[0].ID)
	require.Equal(t, "Edited", list[0].BioInfo.Name)

	stored, err := strg.PageByID(ctx, "alice-new")
	require.NoError(t, err)
	require.Empty(t, stored.RenamedFrom)
	require.Equal(t, "Edited", stored.BioInfo.Name)

	gone, err := strg.PageByID(ctx, "alice")
	require.NoError(t, err)
	require.Nil(t, gone)
}

// editingStorage calls onCopy once, right after the first phase of a rename
// wrote its copy.
type editingStorage struct {
	*memory.Memory
	onCopy func()
}

func (s *editingStorage) CreatePage(ctx context.Context, page domain.Page) (*domain.Page, error) {
	created, err := s.Memory.CreatePage(ctx, page)
	if err == nil && page.RenamedFrom != "" && s.onCopy != nil {
		hook := s.onCopy
		s.onCopy = nil
		hook()
	}

	return created, err
}

func TestRenamePage_KeepsEditOfSourceBetweenPhases(t *testing.T) {
	ctx := context.Background()
	strg := &editingStorage{Memory: memory.New()}
	svc := pages.New(strg, assetsmemory.New(), testOptions())
	createPage(t, svc, alice, "alice")

	var added *domain.Link
	strg.onCopy = func() {
		var err error
		added, err = svc.AddLink(ctx, alice, "alice", domain.Link{Name: "Late", URL: "https://late.example"})
		require.NoError(t, err)
	}

	renamed, err := svc.RenamePage(ctx, alice, "alice", "alice-new")
	require.NoError(t, err)
	require.NotNil(t, added)
	require.Equal(t, []domain.Link{*added}, renamed.Links)
	require.Empty(t, renamed.RenamedFrom)

	stored, err := strg.PageByID(ctx, "alice-new")
	require.NoError(t, err)
	require.Equal(t, []domain.Link{*added}, stored.Links)
	require.Empty(t, stored.RenamedFrom)

	gone, err := strg.PageByID(ctx, "alice")
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestRenamePage_EditOfCopyFinishesRename(t *testing.T) {
	ctx := context.Background()
	strg := &editingStorage{Memory: memory.New()}
	svc := pages.New(strg, assetsmemory.New(), testOptions())
	createPage(t, svc, alice, "alice")

	var edited *domain.BioInfo
	strg.onCopy = func() {
		var err error
		edited, err = svc.UpdatePageInfo(ctx, alice, "alice-new", domain.BioInfo{Name: "Edited"})
		require.NoError(t, err)
	}

	renamed, err := svc.RenamePage(ctx, alice, "alice", "alice-new")
	require.NoError(t, err)
	require.NotNil(t, edited)
	require.Equal(t, "Edited", edited.Name)
	require.Equal(t, "Edited", renamed.BioInfo.Name)

	gone, err := strg.PageByID(ctx, "alice")
	require.NoError(t, err)
	require.Nil(t, gone)

	list, err := svc.ListPages(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Edited", list[0].BioInfo.Name)
}
