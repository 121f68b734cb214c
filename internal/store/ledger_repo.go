package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/kosakata/internal/ledger"
)

// insertBatch keeps each INSERT well under SQLite's bound parameter limit.
const insertBatch = 100

// LedgerRepo stores the attempt ledger in the attempts table. It implements
// ledger.Repo.
type LedgerRepo struct {
	drv *entsql.Driver
}

var _ ledger.Repo = (*LedgerRepo)(nil)

// Load reads every attempts row in the order it was first written.
func (r *LedgerRepo) Load(ctx context.Context) (*ledger.Ledger, error) {
	q, args := entsql.Dialect(r.drv.Dialect()).
		Select("word", "correct", "wrong").
		From(entsql.Table(tableAttempts)).
		OrderBy("position", "word").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var recs []ledger.Record
	for rows.Next() {
		var rec ledger.Record
		if err := rows.Scan(&rec.Word, &rec.Correct, &rec.Wrong); err != nil {
			return nil, fmt.Errorf("%w: %v", ledger.ErrCorrupt, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read attempts: %w", err)
	}
	return ledger.FromRecords(recs), nil
}

// Save replaces the attempts table with the contents of l in one
// transaction.
func (r *LedgerRepo) Save(ctx context.Context, l *ledger.Ledger) error {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}

	b := entsql.Dialect(r.drv.Dialect())
	q, args := b.Delete(tableAttempts).Query()
	if err := tx.Exec(ctx, q, args, nil); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear attempts: %w", err)
	}

	rows := l.Rows()
	now := time.Now().UnixMilli()
	for start := 0; start < len(rows); start += insertBatch {
		end := min(start+insertBatch, len(rows))
		ins := b.Insert(tableAttempts).Columns("word", "correct", "wrong", "position", "updated_at")
		for i := start; i < end; i++ {
			rec := rows[i]
			ins = ins.Values(rec.Word, rec.Correct, rec.Wrong, i, now)
		}
		q, args = ins.OnConflict(
			entsql.ConflictColumns("word"),
			entsql.ResolveWithNewValues(),
		).Query()
		if err := tx.Exec(ctx, q, args, nil); err != nil {
			tx.Rollback()
			return fmt.Errorf("write attempts: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit attempts: %w", err)
	}
	return nil
}
