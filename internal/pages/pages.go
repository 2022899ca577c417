package pages

import (
	"context"
	"errors"
	"linkify/pkg/assets"
	"linkify/pkg/domain"
	"linkify/pkg/logger"
	"linkify/pkg/metrics"
	"linkify/pkg/serrors"
	"linkify/pkg/storage"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	opCreatePage       = "create_page"
	opCheckAvailable   = "check_availability"
	opGetPage          = "get_page"
	opPublicPage       = "public_page"
	opUpdatePageInfo   = "update_page_info"
	opUpdatePageColors = "update_page_colors"
	opListPages        = "list_pages"
	opRemovePage       = "remove_page"
	opRenamePage       = "rename_page"
	opUploadImage      = "upload_profile_image"

	// maxRetryDelayFactor caps the backoff delay at a multiple of the base delay.
	maxRetryDelayFactor = 32
)

// pages is the concrete implementation of the Service interface.
type pages struct {
	options Options
	storage storage.Storage
	assets  assets.Store
}

// New creates a Service backed by the provided page storage and asset store.
func New(storage storage.Storage, assets assets.Store, options Options) Service {
	return &pages{
		options: options.withDefaults(),
		storage: storage,
		assets:  assets,
	}
}

func pageNotFound(id domain.PageID) error {
	return serrors.With(serrors.ErrNotFound, "page %q not found", id)
}

func pageTaken(id domain.PageID) error {
	return serrors.With(serrors.ErrConflict, "page id %q is already taken", id)
}

// dependencyError logs a backing store failure and wraps it as ErrDependency.
// Errors that already carry a semantic kind are returned unchanged.
func dependencyError(ctx context.Context, err error, msg string) error {
	var kind serrors.Kind
	if errors.As(err, &kind) {
		return err
	}

	logger.Error(ctx, msg, zap.Error(err))

	return serrors.Wrap(serrors.ErrDependency, err, "%s", msg)
}

// observe records the outcome and latency of an operation. It is meant to be
// deferred with a pointer to the named error result.
func observe(op string, start time.Time, err *error) {
	metrics.PageOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	outcome := "OK"
	if *err != nil {
		outcome = serrors.KindOf(*err).Error()
	}
	metrics.PageOperations.WithLabelValues(op, outcome).Inc()
}

func (p *pages) now() time.Time {
	return p.options.Clock().UTC().Truncate(time.Microsecond)
}

func (p *pages) backoff() retry.Backoff {
	b := retry.NewExponential(p.options.RetryBaseDelay)
	b = retry.WithCappedDuration(maxRetryDelayFactor*p.options.RetryBaseDelay, b)
	b = retry.WithJitterPercent(25, b)

	return retry.WithMaxRetries(p.options.MaxUpdateAttempts-1, b)
}

// mutate loads the owner's page, applies fn to it and writes it back guarded
// by the loaded version. A concurrent write makes the attempt start over from
// a fresh read; once attempts are exhausted the caller gets ErrConflict.
// Writes are detached from ctx cancellation so an accepted write is never
// abandoned halfway.
func (p *pages) mutate(ctx context.Context,
	op string,
	owner domain.Owner,
	id domain.PageID,
	fn func(page *domain.Page) error) (*domain.Page, error) {
	if err := ValidatePageID(id); err != nil {
		return nil, err
	}

	var updated *domain.Page
	err := retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		page, err := p.storage.OwnerPage(ctx, owner, id)
		if err != nil {
			return dependencyError(ctx, err, "could not read page")
		}
		if page == nil {
			return pageNotFound(id)
		}
		if page.RenamedFrom != "" {
			// the copy of an unfinished rename is not edited while its source lives
			page, err = p.finishRename(context.WithoutCancel(ctx), *page)
			if errors.Is(err, storage.ErrVersionMismatch) {
				metrics.VersionConflicts.WithLabelValues(op).Inc()

				return retry.RetryableError(err)
			}
			if err != nil {
				return err
			}
		}
		if err := fn(page); err != nil {
			return err
		}

		updated, err = p.storage.UpdatePage(context.WithoutCancel(ctx), *page)
		if errors.Is(err, storage.ErrVersionMismatch) {
			metrics.VersionConflicts.WithLabelValues(op).Inc()
			logger.Debug(ctx, "page version changed, retrying", zap.String("operation", op))

			return retry.RetryableError(err)
		}
		if err != nil {
			return dependencyError(ctx, err, "could not update page")
		}

		return nil
	})
	switch {
	case errors.Is(err, storage.ErrVersionMismatch):
		return nil, serrors.Wrap(serrors.ErrConflict, err, "page %q is being modified concurrently", id)
	case err != nil:
		return nil, dependencyError(ctx, err, "could not complete page update")
	}

	return updated, nil
}

func (p *pages) CreatePage(ctx context.Context,
	owner domain.Owner,
	req CreatePageRequest) (page *domain.Page, err error) {
	defer observe(opCreatePage, time.Now(), &err)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := p.now()
	page, err = p.storage.CreatePage(context.WithoutCancel(ctx), domain.Page{
		ID:               req.ID,
		Owner:            owner,
		BioInfo:          req.BioInfo,
		Links:            []domain.Link{},
		SocialMediaLinks: []domain.SocialLink{},
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if errors.Is(err, storage.ErrPageExists) {
		return nil, pageTaken(req.ID)
	}
	if err != nil {
		return nil, dependencyError(ctx, err, "could not create page")
	}

	logger.Info(ctx, "page created", zap.String("page_id", string(page.ID)))

	return page, nil
}

func (p *pages) CheckAvailability(ctx context.Context, id domain.PageID) (available bool, err error) {
	defer observe(opCheckAvailable, time.Now(), &err)

	if err := ValidatePageID(id); err != nil {
		return false, err
	}

	page, err := p.storage.PageByID(ctx, id)
	if err != nil {
		return false, dependencyError(ctx, err, "could not read page")
	}

	return page == nil, nil
}

func (p *pages) GetPage(ctx context.Context, owner domain.Owner, id domain.PageID) (page *domain.Page, err error) {
	defer observe(opGetPage, time.Now(), &err)

	return p.ownerPage(ctx, owner, id)
}

func (p *pages) ownerPage(ctx context.Context, owner domain.Owner, id domain.PageID) (*domain.Page, error) {
	if err := ValidatePageID(id); err != nil {
		return nil, err
	}

	page, err := p.storage.OwnerPage(ctx, owner, id)
	if err != nil {
		return nil, dependencyError(ctx, err, "could not read page")
	}
	if page == nil {
		return nil, pageNotFound(id)
	}

	return page, nil
}

// PublicPage returns a page regardless of owner, for public rendering.
func (p *pages) PublicPage(ctx context.Context, id domain.PageID) (page *domain.Page, err error) {
	defer observe(opPublicPage, time.Now(), &err)

	if err := ValidatePageID(id); err != nil {
		return nil, err
	}

	page, err = p.storage.PageByID(ctx, id)
	if err != nil {
		return nil, dependencyError(ctx, err, "could not read page")
	}
	if page == nil {
		return nil, pageNotFound(id)
	}

	return page, nil
}

// UpdatePageInfo replaces the bio block. A replaced profile image hosted on
// the CDN is scheduled for deletion.
func (p *pages) UpdatePageInfo(ctx context.Context,
	owner domain.Owner,
	id domain.PageID,
	info domain.BioInfo) (_ *domain.BioInfo, err error) {
	defer observe(opUpdatePageInfo, time.Now(), &err)

	if err := validateBioInfo(info); err != nil {
		return nil, err
	}

	var previousImage string
	page, err := p.mutate(ctx, opUpdatePageInfo, owner, id, func(page *domain.Page) error {
		previousImage = page.BioInfo.ImageURL
		page.BioInfo = info

		return nil
	})
	if err != nil {
		return nil, err
	}

	if previousImage != info.ImageURL {
		p.enqueuePrune(ctx, owner, previousImage)
	}

	return &page.BioInfo, nil
}

func (p *pages) UpdatePageColors(ctx context.Context,
	owner domain.Owner,
	id domain.PageID,
	colors domain.PageColors) (_ domain.PageColors, err error) {
	defer observe(opUpdatePageColors, time.Now(), &err)

	if err := validateColors(colors); err != nil {
		return nil, err
	}

	page, err := p.mutate(ctx, opUpdatePageColors, owner, id, func(page *domain.Page) error {
		page.PageColors = make(domain.PageColors, len(colors))
		for role, value := range colors {
			page.PageColors[role] = value
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return page.PageColors, nil
}

// ListPages returns the owner's pages ordered by creation time. Records left
// behind by an interrupted rename are reconciled on the way.
func (p *pages) ListPages(ctx context.Context, owner domain.Owner) (_ []domain.Page, err error) {
	defer observe(opListPages, time.Now(), &err)

	list, err := p.storage.OwnerPages(ctx, owner)
	if err != nil {
		return nil, dependencyError(ctx, err, "could not list pages")
	}

	list = p.repairRenames(ctx, list)
	if list == nil {
		list = []domain.Page{}
	}

	return list, nil
}

// RemovePage deletes the owner's page. Removing a missing page is NotFound.
func (p *pages) RemovePage(ctx context.Context, owner domain.Owner, id domain.PageID) (err error) {
	defer observe(opRemovePage, time.Now(), &err)

	if err := ValidatePageID(id); err != nil {
		return err
	}

	var deleted *domain.Page
	err = retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		var err error
		deleted, err = p.storage.DeletePage(context.WithoutCancel(ctx), owner, id)
		if errors.Is(err, storage.ErrVersionMismatch) {
			metrics.VersionConflicts.WithLabelValues(opRemovePage).Inc()

			return retry.RetryableError(err)
		}

		return err
	})
	switch {
	case errors.Is(err, storage.ErrVersionMismatch):
		return serrors.Wrap(serrors.ErrConflict, err, "page %q is being modified concurrently", id)
	case err != nil:
		return dependencyError(ctx, err, "could not delete page")
	case deleted == nil:
		return pageNotFound(id)
	}

	logger.Info(ctx, "page removed", zap.String("page_id", string(id)))
	p.enqueuePrune(ctx, owner, deleted.BioInfo.ImageURL)

	return nil
}
