package postgres

import (
	"database/sql"
	"fmt"
	"linkify/pkg/domain"
	"time"

	"github.com/goccy/go-json"
)

type PgPage struct {
	ID    string `db:"id"`
	Owner string `db:"owner"`

	BioInfo          json.RawMessage `db:"bio_info"`
	Links            json.RawMessage `db:"links"`
	SocialMediaLinks json.RawMessage `db:"social_media_links"`
	PageColors       json.RawMessage `db:"page_colors"`

	Verified    bool           `db:"verified"`
	RenamedFrom sql.NullString `db:"renamed_from"`
	Version     uint64         `db:"version"    goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPage) ToDomain() (*domain.Page, error) {
	page := domain.Page{
		ID:          domain.PageID(p.ID),
		Owner:       domain.Owner(p.Owner),
		Verified:    p.Verified,
		RenamedFrom: domain.PageID(p.RenamedFrom.String),
		Version:     p.Version,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if err := json.Unmarshal(p.BioInfo, &page.BioInfo); err != nil {
		return nil, fmt.Errorf("could not unmarshal bio info: %w", err)
	}
	if err := json.Unmarshal(p.Links, &page.Links); err != nil {
		return nil, fmt.Errorf("could not unmarshal links: %w", err)
	}
	if err := json.Unmarshal(p.SocialMediaLinks, &page.SocialMediaLinks); err != nil {
		return nil, fmt.Errorf("could not unmarshal social media links: %w", err)
	}
	if err := json.Unmarshal(p.PageColors, &page.PageColors); err != nil {
		return nil, fmt.Errorf("could not unmarshal page colors: %w", err)
	}
	if len(page.PageColors) == 0 {
		page.PageColors = nil
	}

	return &page, nil
}

func (p *PgPage) FromDomain(page domain.Page) error {
	bioInfo, err := json.Marshal(page.BioInfo)
	if err != nil {
		return fmt.Errorf("could not marshal bio info: %w", err)
	}
	links, err := json.Marshal(nonNil(page.Links))
	if err != nil {
		return fmt.Errorf("could not marshal links: %w", err)
	}
	socialLinks, err := json.Marshal(nonNil(page.SocialMediaLinks))
	if err != nil {
		return fmt.Errorf("could not marshal social media links: %w", err)
	}
	colors := page.PageColors
	if colors == nil {
		colors = domain.PageColors{}
	}
	pageColors, err := json.Marshal(colors)
	if err != nil {
		return fmt.Errorf("could not marshal page colors: %w", err)
	}

	*p = PgPage{
		ID:               string(page.ID),
		Owner:            string(page.Owner),
		BioInfo:          bioInfo,
		Links:            links,
		SocialMediaLinks: socialLinks,
		PageColors:       pageColors,
		Verified:         page.Verified,
		RenamedFrom: sql.NullString{
			String: string(page.RenamedFrom),
			Valid:  page.RenamedFrom != "",
		},
		Version:   page.Version,
		CreatedAt: page.CreatedAt,
		UpdatedAt: page.UpdatedAt,
	}

	return nil
}

// nonNil keeps empty collections encoded as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}

func pgPagesToDomain(pages []PgPage) ([]domain.Page, error) {
	out := make([]domain.Page, 0, len(pages))
	for _, page := range pages {
		d, err := page.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
