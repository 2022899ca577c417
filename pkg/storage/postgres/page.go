package postgres

import (
	"context"
	"fmt"
	"linkify/pkg/domain"
	"linkify/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	pagesTable = "pages"
)

// CreatePage inserts the page with ON CONFLICT DO NOTHING so that a taken ID
// is reported as storage.ErrPageExists without touching the existing row.
func (p *PgSQL) CreatePage(ctx context.Context, page domain.Page) (*domain.Page, error) {
	var row PgPage
	if err := row.FromDomain(page); err != nil {
		return nil, err
	}

	var result PgPage
	found, err := p.Builder.Insert(pagesTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgPage{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store page into pg: %w", err)
	}
	if !found {
		return nil, storage.ErrPageExists
	}

	return result.ToDomain()
}

func (p *PgSQL) PageByID(ctx context.Context, id domain.PageID) (*domain.Page, error) {
	return p.page(ctx, goqu.I("id").Eq(string(id)))
}

func (p *PgSQL) OwnerPage(ctx context.Context, owner domain.Owner, id domain.PageID) (*domain.Page, error) {
	return p.page(ctx,
		goqu.I("id").Eq(string(id)),
		goqu.I("owner").Eq(string(owner)),
	)
}

func (p *PgSQL) page(ctx context.Context, where ...goqu.Expression) (*domain.Page, error) {
	var row PgPage
	found, err := p.Builder.From(pagesTable).
		Where(where...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch page from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdatePage writes the mutable columns guarded by the version column. A
// missing row and a stale version both surface as storage.ErrVersionMismatch.
func (p *PgSQL) UpdatePage(ctx context.Context, page domain.Page) (*domain.Page, error) {
	var row PgPage
	if err := row.FromDomain(page); err != nil {
		return nil, err
	}

	rec := goqu.Record{
		"bio_info":           row.BioInfo,
		"links":              row.Links,
		"social_media_links": row.SocialMediaLinks,
		"page_colors":        row.PageColors,
		"verified":           row.Verified,
		"renamed_from":       goqu.L("NULL"),
		"version":            goqu.L("version + 1"),
		"updated_at":         goqu.L("CURRENT_TIMESTAMP"),
	}
	if row.RenamedFrom.Valid {
		rec["renamed_from"] = row.RenamedFrom.String
	}

	var result PgPage
	found, err := p.Builder.Update(pagesTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(row.ID),
			goqu.I("owner").Eq(row.Owner),
			goqu.I("version").Eq(row.Version),
		).
		Returning(&PgPage{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not update page in pg: %w", err)
	}
	if !found {
		return nil, storage.ErrVersionMismatch
	}

	return result.ToDomain()
}

func (p *PgSQL) DeletePage(ctx context.Context, owner domain.Owner, id domain.PageID) (*domain.Page, error) {
	var row PgPage
	found, err := p.Builder.Delete(pagesTable).
		Where(
			goqu.I("id").Eq(string(id)),
			goqu.I("owner").Eq(string(owner)),
		).
		Returning(&PgPage{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete page in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeletePageVersion deletes with the version in the WHERE clause. Under READ
// COMMITTED a concurrent update makes the row no longer match, so a missing
// result is told apart from a version mismatch by reading the row again.
func (p *PgSQL) DeletePageVersion(ctx context.Context,
	owner domain.Owner,
	id domain.PageID,
	version uint64) (*domain.Page, error) {
	var row PgPage
	found, err := p.Builder.Delete(pagesTable).
		Where(
			goqu.I("id").Eq(string(id)),
			goqu.I("owner").Eq(string(owner)),
			goqu.I("version").Eq(version),
		).
		Returning(&PgPage{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete page version in pg: %w", err)
	}
	if found {
		return row.ToDomain()
	}

	current, err := p.OwnerPage(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return nil, storage.ErrVersionMismatch
	}

	return nil, nil
}

// OwnerPages returns the owner's pages ordered by creation time.
func (p *PgSQL) OwnerPages(ctx context.Context, owner domain.Owner) ([]domain.Page, error) {
	var rows []PgPage
	if err := p.Builder.From(pagesTable).
		Where(goqu.I("owner").Eq(string(owner))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch owner pages from pg: %w", err)
	}

	return pgPagesToDomain(rows)
}
