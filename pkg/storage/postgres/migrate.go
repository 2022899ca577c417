package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"linkify"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
)

// Migrate brings the database to the latest schema: the pages table from the
// embedded goose migrations, then the River tables backing the image prune
// queue. Both steps are no-ops when already current.
func (p *PgSQL) Migrate(ctx context.Context) error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return errors.New("could not migrate inside a transaction")
	}

	goose.SetBaseFS(linkify.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate pages schema: %w", err)
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}
	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if current >= latest {
		return nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latest,
	}); err != nil {
		return fmt.Errorf("could not migrate river queue schema: %w", err)
	}

	return nil
}
