package pages

import (
	"context"
	"linkify/pkg/domain"
	"linkify/pkg/serrors"
	"time"

	"github.com/google/uuid"
)

// collection implements the ordered link operations shared by the link and
// social link lists of a page.
type collection[T any] struct {
	// name is used in operation metrics and error messages.
	name string
	// items points into the page at the list being edited.
	items func(page *domain.Page) *[]T
	// id returns the identifier of an item.
	id func(item T) string
	// withID returns a copy of item carrying id.
	withID func(item T, id string) T
	// merge overlays the non-empty fields of update onto item.
	merge func(item T, update T) T
	// validate checks an item; partial is set for updates.
	validate func(item T, partial bool) error
}

//nolint: gochecknoglobals
var (
	links = collection[domain.Link]{
		name:   "link",
		items:  func(page *domain.Page) *[]domain.Link { return &page.Links },
		id:     func(item domain.Link) string { return item.ID },
		withID: func(item domain.Link, id string) domain.Link {
			item.ID = id

			return item
		},
		merge: func(item domain.Link, update domain.Link) domain.Link {
			if update.URL != "" {
				item.URL = update.URL
			}
			if update.Name != "" {
				item.Name = update.Name
			}

			return item
		},
		validate: validateLink,
	}

	socialLinks = collection[domain.SocialLink]{
		name:   "social_link",
		items:  func(page *domain.Page) *[]domain.SocialLink { return &page.SocialMediaLinks },
		id:     func(item domain.SocialLink) string { return item.ID },
		withID: func(item domain.SocialLink, id string) domain.SocialLink {
			item.ID = id

			return item
		},
		merge: func(item domain.SocialLink, update domain.SocialLink) domain.SocialLink {
			item.URL = update.URL

			return item
		},
		validate: validateSocialLink,
	}
)

func (c collection[T]) notFound(id string) error {
	return serrors.With(serrors.ErrNotFound, "%s %q not found", c.name, id)
}

// add appends item under a freshly generated identifier.
func (c collection[T]) add(ctx context.Context,
	p *pages,
	owner domain.Owner,
	pageID domain.PageID,
	item T) (_ *T, err error) {
	op := "add_" + c.name
	defer observe(op, time.Now(), &err)

	if err := c.validate(item, false); err != nil {
		return nil, err
	}

	var added T
	if _, err := p.mutate(ctx, op, owner, pageID, func(page *domain.Page) error {
		// a fresh id per attempt keeps retries independent of each other
		added = c.withID(item, uuid.NewString())
		items := c.items(page)
		*items = append(*items, added)

		return nil
	}); err != nil {
		return nil, err
	}

	return &added, nil
}

// update merges item into the element with the same identifier.
func (c collection[T]) update(ctx context.Context,
	p *pages,
	owner domain.Owner,
	pageID domain.PageID,
	item T) (_ *T, err error) {
	op := "update_" + c.name
	defer observe(op, time.Now(), &err)

	if err := c.validate(item, true); err != nil {
		return nil, err
	}

	id := c.id(item)
	var updated T
	if _, err := p.mutate(ctx, op, owner, pageID, func(page *domain.Page) error {
		items := *c.items(page)
		for i := range items {
			if c.id(items[i]) == id {
				items[i] = c.merge(items[i], item)
				updated = items[i]

				return nil
			}
		}

		return c.notFound(id)
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

// remove drops the element with the given identifier.
func (c collection[T]) remove(ctx context.Context,
	p *pages,
	owner domain.Owner,
	pageID domain.PageID,
	id string) (err error) {
	op := "remove_" + c.name
	defer observe(op, time.Now(), &err)

	_, err = p.mutate(ctx, op, owner, pageID, func(page *domain.Page) error {
		items := c.items(page)
		for i, item := range *items {
			if c.id(item) == id {
				*items = append((*items)[:i:i], (*items)[i+1:]...)

				return nil
			}
		}

		return c.notFound(id)
	})

	return err
}

// reorder rearranges the list to follow ids, which must be a permutation of
// the current identifiers.
func (c collection[T]) reorder(ctx context.Context,
	p *pages,
	owner domain.Owner,
	pageID domain.PageID,
	ids []string) (_ []T, err error) {
	op := "reorder_" + c.name
	defer observe(op, time.Now(), &err)

	page, err := p.mutate(ctx, op, owner, pageID, func(page *domain.Page) error {
		items := c.items(page)
		if len(ids) != len(*items) {
			return serrors.With(serrors.ErrInvalidArgument,
				"expected %d %s ids, got %d", len(*items), c.name, len(ids))
		}

		byID := make(map[string]T, len(*items))
		for _, item := range *items {
			byID[c.id(item)] = item
		}

		ordered := make([]T, 0, len(ids))
		for _, id := range ids {
			item, ok := byID[id]
			if !ok {
				return serrors.With(serrors.ErrInvalidArgument, "%s id %q is unknown or repeated", c.name, id)
			}
			delete(byID, id)
			ordered = append(ordered, item)
		}
		*items = ordered

		return nil
	})
	if err != nil {
		return nil, err
	}

	return *c.items(page), nil
}

func (p *pages) AddLink(ctx context.Context,
	owner domain.Owner,
	pageID domain.PageID,
	link domain.Link) (*domain.Link, error) {
	return links.add(ctx, p, owner, pageID, link)
}

func (p *pages) UpdateLink(ctx context.Context,
	owner domain.Owner,
	pageID domain.PageID,
	link domain.Link) (*domain.Link, error) {
	return links.update(ctx, p, owner, pageID, link)
}

func (p *pages) RemoveLink(ctx context.Context, owner domain.Owner, pageID domain.PageID, linkID string) error {
	return links.remove(ctx, p, owner, pageID, linkID)
}

func (p *pages) ReorderLinks(ctx context.Context,
	owner domain.Owner,
	pageID domain.PageID,
	ids []string) ([]domain.Link, error) {
	return links.reorder(ctx, p, owner, pageID, ids)
}

func (p *pages) AddSocialLink(ctx context.Context,
	owner domain.Owner,
	pageID domain.PageID,
	link domain.SocialLink) (*domain.SocialLink, error) {
	return socialLinks.add(ctx, p, owner, pageID, link)
}

func (p *pages) UpdateSocialLink(ctx context.Context,
	owner domain.Owner,
	pageID domain.PageID,
	link domain.SocialLink) (*domain.SocialLink, error) {
	return socialLinks.update(ctx, p, owner, pageID, link)
}

func (p *pages) RemoveSocialLink(ctx context.Context, owner domain.Owner, pageID domain.PageID, linkID string) error {
	return socialLinks.remove(ctx, p, owner, pageID, linkID)
}

func (p *pages) ReorderSocialLinks(ctx context.Context,
	owner domain.Owner,
	pageID domain.PageID,
	ids []string) ([]domain.SocialLink, error) {
	return socialLinks.reorder(ctx, p, owner, pageID, ids)
}
