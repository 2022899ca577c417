package pages

import (
	"context"
	"errors"
	"linkify/pkg/domain"
	"linkify/pkg/logger"
	"linkify/pkg/metrics"
	"linkify/pkg/serrors"
	"linkify/pkg/storage"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// RenamePage moves a page to a new identifier keeping its content, owner and
// creation time. Backends with transactions move the record atomically.
// Otherwise the rename runs in two phases: the copy under the new identifier
// is written with a marker naming its source, then the source is deleted and
// the marker cleared. The source is only deleted at the version that was
// copied, so a write racing the rename makes the attempt start over instead of
// being lost. A rename interrupted between the phases is completed by
// retrying it, by the next edit of the copy or by the next ListPages of the
// owner.
func (p *pages) RenamePage(ctx context.Context,
	owner domain.Owner,
	id domain.PageID,
	newID domain.PageID) (page *domain.Page, err error) {
	defer observe(opRenamePage, time.Now(), &err)

	if err := ValidatePageID(id); err != nil {
		return nil, err
	}
	if err := ValidatePageID(newID); err != nil {
		return nil, err
	}
	if id == newID {
		return p.ownerPage(ctx, owner, id)
	}

	attempt := func(ctx context.Context) (*domain.Page, error) {
		return p.renameTwoPhase(ctx, owner, id, newID)
	}
	if tx, ok := p.storage.(storage.Transactional); ok {
		attempt = func(ctx context.Context) (*domain.Page, error) {
			return p.renameTx(ctx, tx, owner, id, newID)
		}
	}

	err = retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		var err error
		page, err = attempt(ctx)
		if errors.Is(err, storage.ErrVersionMismatch) {
			metrics.VersionConflicts.WithLabelValues(opRenamePage).Inc()
			logger.Debug(ctx, "page changed during rename, retrying", zap.String("page_id", string(id)))

			return retry.RetryableError(err)
		}

		return err
	})
	switch {
	case errors.Is(err, storage.ErrVersionMismatch):
		return nil, serrors.Wrap(serrors.ErrConflict, err, "page %q is being modified concurrently", id)
	case err != nil:
		return nil, dependencyError(ctx, err, "could not rename page")
	}

	logger.Info(ctx, "page renamed", zap.String("page_id", string(id)), zap.String("new_page_id", string(newID)))

	return page, nil
}

// renameTx moves the page inside one transaction. The delete is guarded by
// the version that was read, so an edit committed after the read rolls the
// attempt back with storage.ErrVersionMismatch.
func (p *pages) renameTx(ctx context.Context,
	tx storage.Transactional,
	owner domain.Owner,
	id domain.PageID,
	newID domain.PageID) (*domain.Page, error) {
	ctx = context.WithoutCancel(ctx)

	var renamed *domain.Page
	err := tx.WithTx(ctx, func(strg storage.AllStorage) error {
		page, err := strg.OwnerPage(ctx, owner, id)
		if err != nil {
			return dependencyError(ctx, err, "could not read page")
		}
		if page == nil {
			return pageNotFound(id)
		}

		next := page.Clone()
		next.ID = newID
		next.RenamedFrom = ""
		renamed, err = strg.CreatePage(ctx, next)
		if errors.Is(err, storage.ErrPageExists) {
			return pageTaken(newID)
		}
		if err != nil {
			return dependencyError(ctx, err, "could not create renamed page")
		}

		deleted, err := strg.DeletePageVersion(ctx, owner, id, page.Version)
		switch {
		case errors.Is(err, storage.ErrVersionMismatch):
			return err
		case err != nil:
			return dependencyError(ctx, err, "could not delete renamed page")
		case deleted == nil:
			return storage.ErrVersionMismatch
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return renamed, nil
}

// renameTwoPhase runs one attempt of a rename on a backend without
// transactions. storage.ErrVersionMismatch means the source or the copy
// changed under the attempt and it should be repeated.
func (p *pages) renameTwoPhase(ctx context.Context,
	owner domain.Owner,
	id domain.PageID,
	newID domain.PageID) (*domain.Page, error) {
	source, err := p.storage.OwnerPage(ctx, owner, id)
	if err != nil {
		return nil, dependencyError(ctx, err, "could not read page")
	}
	if source == nil {
		// an earlier attempt may have deleted the source already
		done, err := p.storage.OwnerPage(ctx, owner, newID)
		if err != nil {
			return nil, dependencyError(ctx, err, "could not read page")
		}
		if done != nil && done.RenamedFrom == id {
			return p.clearRenameMarker(context.WithoutCancel(ctx), *done), nil
		}

		return nil, pageNotFound(id)
	}

	wctx := context.WithoutCancel(ctx)
	if source.RenamedFrom != "" {
		if source, err = p.finishRename(wctx, *source); err != nil {
			return nil, err
		}
	}

	next := source.Clone()
	next.ID = newID
	next.RenamedFrom = id
	renamed, err := p.storage.CreatePage(wctx, next)
	if errors.Is(err, storage.ErrPageExists) {
		existing, err := p.storage.PageByID(ctx, newID)
		if err != nil {
			return nil, dependencyError(ctx, err, "could not read page")
		}
		if existing == nil {
			return nil, storage.ErrVersionMismatch
		}
		if !isRenameCopy(*source, *existing) {
			return nil, pageTaken(newID)
		}

		return p.completeRename(wctx, *source, *existing, true)
	}
	if err != nil {
		return nil, dependencyError(ctx, err, "could not create renamed page")
	}

	return p.completeRename(wctx, *source, *renamed, false)
}

// isRenameCopy reports whether renamed was written by a rename of source.
func isRenameCopy(source, renamed domain.Page) bool {
	return renamed.Owner == source.Owner &&
		renamed.RenamedFrom == source.ID &&
		renamed.CreatedAt.Equal(source.CreatedAt)
}

// completeRename runs the second phase of a rename. When sync is set the copy
// was written by an earlier attempt and is first overwritten with source.
// source is deleted only at the version that was copied.
func (p *pages) completeRename(ctx context.Context, source, renamed domain.Page, sync bool) (*domain.Page, error) {
	if sync {
		next := source.Clone()
		next.ID = renamed.ID
		next.Version = renamed.Version
		next.RenamedFrom = source.ID
		updated, err := p.storage.UpdatePage(ctx, next)
		if errors.Is(err, storage.ErrVersionMismatch) {
			return nil, err
		}
		if err != nil {
			return nil, dependencyError(ctx, err, "could not update renamed page")
		}
		renamed = *updated
	}

	deleted, err := p.storage.DeletePageVersion(ctx, source.Owner, source.ID, source.Version)
	switch {
	case errors.Is(err, storage.ErrVersionMismatch):
		return nil, err
	case err != nil:
		return nil, dependencyError(ctx, err, "could not delete renamed page")
	case deleted == nil:
		// gone already: an edit of the copy may have finished this rename
		current, err := p.storage.OwnerPage(ctx, renamed.Owner, renamed.ID)
		if err != nil {
			return nil, dependencyError(ctx, err, "could not read page")
		}
		if current != nil && current.CreatedAt.Equal(source.CreatedAt) &&
			(current.RenamedFrom == "" || current.RenamedFrom == source.ID) {
			return p.clearRenameMarker(ctx, *current), nil
		}

		return nil, storage.ErrVersionMismatch
	}

	return p.clearRenameMarker(ctx, renamed), nil
}

// finishRename settles a page that still carries a rename marker: the rename
// is completed when its source is still around, otherwise the marker is
// dropped.
func (p *pages) finishRename(ctx context.Context, renamed domain.Page) (*domain.Page, error) {
	source, err := p.storage.OwnerPage(ctx, renamed.Owner, renamed.RenamedFrom)
	if err != nil {
		return nil, dependencyError(ctx, err, "could not read page")
	}
	if source == nil || !isRenameCopy(*source, renamed) {
		return p.clearRenameMarker(ctx, renamed), nil
	}

	page, err := p.completeRename(ctx, *source, renamed, true)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "completed interrupted rename",
		zap.String("page_id", string(source.ID)), zap.String("new_page_id", string(renamed.ID)))

	return page, nil
}

// clearRenameMarker drops the marker of a completed rename. Failing to do so
// is only logged: a stale marker no longer matches any source page.
func (p *pages) clearRenameMarker(ctx context.Context, page domain.Page) *domain.Page {
	if page.RenamedFrom == "" {
		return &page
	}

	page.RenamedFrom = ""
	updated, err := p.storage.UpdatePage(ctx, page)
	if err != nil {
		logger.Warn(ctx, "could not clear rename marker",
			zap.String("page_id", string(page.ID)), zap.Error(err))

		return &page
	}

	return updated
}

// repairRenames completes renames whose source and copy are both listed and
// drops the sources from the result.
func (p *pages) repairRenames(ctx context.Context, list []domain.Page) []domain.Page {
	index := make(map[domain.PageID]int, len(list))
	for i, page := range list {
		index[page.ID] = i
	}

	removed := make(map[domain.PageID]bool)
	for i, page := range list {
		if page.RenamedFrom == "" {
			continue
		}
		j, ok := index[page.RenamedFrom]
		if !ok || removed[page.RenamedFrom] || !isRenameCopy(list[j], page) {
			continue
		}

		renamed, err := p.completeRename(context.WithoutCancel(ctx), list[j], page, true)
		if err != nil {
			logger.Warn(ctx, "could not complete interrupted rename",
				zap.String("page_id", string(page.ID)), zap.Error(err))

			continue
		}

		logger.Info(ctx, "completed interrupted rename",
			zap.String("page_id", string(page.RenamedFrom)), zap.String("new_page_id", string(page.ID)))
		list[i] = *renamed
		removed[page.RenamedFrom] = true
	}

	if len(removed) == 0 {
		return list
	}

	out := make([]domain.Page, 0, len(list)-len(removed))
	for _, page := range list {
		if !removed[page.ID] {
			out = append(out, page)
		}
	}

	return out
}
