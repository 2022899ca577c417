package pages

import (
	"context"
	"linkify/pkg/domain"
)

// Service is the page directory: page lifecycle, the two ordered link
// collections and profile image uploads. Every owner-scoped operation treats
// a page owned by someone else exactly like a missing page.
//
//go:generate mockgen -package mockpages -source=interface.go -destination=mock/mockpages.go *
type Service interface {
	CreatePage(ctx context.Context, owner domain.Owner, req CreatePageRequest) (*domain.Page, error)
	CheckAvailability(ctx context.Context, id domain.PageID) (bool, error)
	GetPage(ctx context.Context, owner domain.Owner, id domain.PageID) (*domain.Page, error)
	PublicPage(ctx context.Context, id domain.PageID) (*domain.Page, error)
	UpdatePageInfo(ctx context.Context, owner domain.Owner, id domain.PageID, info domain.BioInfo) (*domain.BioInfo, error)
	UpdatePageColors(ctx context.Context,
		owner domain.Owner,
		id domain.PageID,
		colors domain.PageColors) (domain.PageColors, error)
	ListPages(ctx context.Context, owner domain.Owner) ([]domain.Page, error)
	RemovePage(ctx context.Context, owner domain.Owner, id domain.PageID) error
	RenamePage(ctx context.Context, owner domain.Owner, id domain.PageID, newID domain.PageID) (*domain.Page, error)

	AddLink(ctx context.Context, owner domain.Owner, pageID domain.PageID, link domain.Link) (*domain.Link, error)
	UpdateLink(ctx context.Context, owner domain.Owner, pageID domain.PageID, link domain.Link) (*domain.Link, error)
	RemoveLink(ctx context.Context, owner domain.Owner, pageID domain.PageID, linkID string) error
	ReorderLinks(ctx context.Context, owner domain.Owner, pageID domain.PageID, ids []string) ([]domain.Link, error)

	AddSocialLink(ctx context.Context,
		owner domain.Owner,
		pageID domain.PageID,
		link domain.SocialLink) (*domain.SocialLink, error)
	UpdateSocialLink(ctx context.Context,
		owner domain.Owner,
		pageID domain.PageID,
		link domain.SocialLink) (*domain.SocialLink, error)
	RemoveSocialLink(ctx context.Context, owner domain.Owner, pageID domain.PageID, linkID string) error
	ReorderSocialLinks(ctx context.Context,
		owner domain.Owner,
		pageID domain.PageID,
		ids []string) ([]domain.SocialLink, error)

	UploadProfileImage(ctx context.Context, owner domain.Owner, pageID domain.PageID, data []byte) (string, error)
}
