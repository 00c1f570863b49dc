// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// DB is the handle a [Session] runs on. [*pgxpool.Pool] satisfies it.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Change is one staged write.
type Change struct {
	SQL  string
	Args []any

	// Returning scans the row produced by a RETURNING clause. When nil the
	// change runs through Exec and its command tag supplies the row count.
	Returning func(row pgx.Row) error
}

// Session is a unit of work scoped to one request.
//
// Writes are staged with [Session.Stage] and applied together by
// [Session.Commit]; reads go straight to the pool. A Session is not safe for
// concurrent use: the request that created it owns it.
type Session struct {
	db      DB
	pending []Change
}

// NewSession returns an empty unit of work on db.
func NewSession(db DB) *Session {
	return &Session{db: db}
}

// Stage queues a write until the next [Session.Commit].
func (session *Session) Stage(change Change) {
	session.pending = append(session.pending, change)
}

// Pending reports how many writes are queued.
func (session *Session) Pending() int {
	return len(session.pending)
}

// Query runs a read outside the unit of work.
func (session *Session) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return session.db.Query(ctx, sql, args...)
}

// QueryRow runs a single-row read outside the unit of work.
func (session *Session) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return session.db.QueryRow(ctx, sql, args...)
}

// Commit applies every staged write inside one transaction and returns the
// number of rows they affected.
//
// The queue is cleared whether or not the commit succeeds. With nothing
// staged Commit returns (0, nil) without touching the database.
func (session *Session) Commit(ctx context.Context) (int64, error) {
	if len(session.pending) == 0 {
		return 0, nil
	}

	changes := session.pending
	session.pending = nil

	tx, err := session.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("postgres: begin: %w", err)
	}

	// Rollback after a successful Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	var affected int64
	for _, change := range changes {
		rows, err := apply(ctx, tx, change)
		if err != nil {
			return 0, err
		}
		affected += rows
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("postgres: commit: %w", err)
	}

	return affected, nil
}

// apply runs one change inside tx.
func apply(ctx context.Context, tx pgx.Tx, change Change) (int64, error) {
	if change.Returning == nil {
		tag, err := tx.Exec(ctx, change.SQL, change.Args...)
		if err != nil {
			return 0, err
		}
		return tag.RowsAffected(), nil
	}

	err := change.Returning(tx.QueryRow(ctx, change.SQL, change.Args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return 1, nil
}
