// Package dbx lets the note, category, and user repositories run on either a
// plain connection or a transaction. Repositories accept the DBTX interface,
// and WithTx supplies the transactional variant where several writes have to
// land together, as when a signup has to create the account and its default
// category atomically.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the query surface a repository needs. *sql.DB and *sql.Tx both
// satisfy it, so the same repository code serves single statements and
// multi-statement transactions.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction opened on db. The transaction commits
// when fn returns nil and rolls back when it returns an error or panics;
// a panic is re-raised after the rollback.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
//	        return err
//	    }
//	    _, err := s.repomanager.Categories(tx).Create(ctx, category)
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
