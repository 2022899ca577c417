package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// AddJob enqueues a background job, such as pruning a replaced profile image,
// in the River tables of this database. Inside a transaction the job is only
// visible once the page write that caused it commits. It reports false when
// River dropped the job as a duplicate of a pending unique one.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	tx, inTx := p.DB.(*sql.Tx)

	var db *sql.DB
	if !inTx {
		db = p.DB.(*sql.DB)
	}

	// insert only: the client never works jobs so it needs no queues or workers
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return false, fmt.Errorf("could not create river queue client: %w", err)
	}

	insert := func() (bool, error) {
		res, err := client.Insert(ctx, args, opts)
		if err != nil {
			return false, err //nolint: wrapcheck
		}

		return !res.UniqueSkippedAsDuplicate, nil
	}
	if inTx {
		insert = func() (bool, error) {
			res, err := client.InsertTx(ctx, tx, args, opts)
			if err != nil {
				return false, err //nolint: wrapcheck
			}

			return !res.UniqueSkippedAsDuplicate, nil
		}
	}

	added, err := insert()
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return added, nil
}
