// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"context"
	"errors"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRow scans a fixed list of values into its destinations.
type fakeRow struct {
	values []any
	err    error
}

func (row *fakeRow) Scan(dest ...any) error {
	if row.err != nil {
		return row.err
	}
	if len(dest) != len(row.values) {
		return errors.New("fakeRow: destination count mismatch")
	}
	for i, target := range dest {
		slot := reflect.ValueOf(target).Elem()
		if row.values[i] == nil {
			slot.Set(reflect.Zero(slot.Type()))
			continue
		}
		slot.Set(reflect.ValueOf(row.values[i]))
	}
	return nil
}

// fakeRows iterates over a fixed result set.
type fakeRows struct {
	pgx.Rows
	data   [][]any
	cursor int
	closed bool
}

func (rows *fakeRows) Next() bool {
	if rows.cursor >= len(rows.data) {
		return false
	}
	rows.cursor++
	return true
}

func (rows *fakeRows) Scan(dest ...any) error {
	return (&fakeRow{values: rows.data[rows.cursor-1]}).Scan(dest...)
}

func (rows *fakeRows) Err() error { return nil }
func (rows *fakeRows) Close()     { rows.closed = true }

// fakeTx records statements and answers them from canned results.
type fakeTx struct {
	pgx.Tx
	tags    []string
	execErr error
	row     pgx.Row

	statements []string
	args       [][]any
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tx.statements = append(tx.statements, sql)
	tx.args = append(tx.args, args)
	if tx.execErr != nil {
		return pgconn.CommandTag{}, tx.execErr
	}
	tag := tx.tags[0]
	tx.tags = tx.tags[1:]
	return pgconn.NewCommandTag(tag), nil
}

func (tx *fakeTx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	tx.statements = append(tx.statements, sql)
	tx.args = append(tx.args, args)
	return tx.row
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

// fakeDB hands out one transaction and canned read results.
type fakeDB struct {
	tx       *fakeTx
	beginErr error
	begins   int

	rows *fakeRows
	row  pgx.Row

	lastSQL  string
	lastArgs []any
}

func (db *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	db.begins++
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	return db.tx, nil
}

func (db *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.lastSQL, db.lastArgs = sql, args
	return db.rows, nil
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.lastSQL, db.lastArgs = sql, args
	return db.row
}
