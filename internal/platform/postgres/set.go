// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Table maps an entity type onto one table with a single BIGINT identity key.
type Table[T any] struct {
	// Name is the schema-qualified table name.
	Name string

	// Key is the identity column. The store generates it on insert.
	Key string

	// Columns lists the writable columns in the order Values returns them.
	Columns []string

	// Values extracts the writable column values from an entity.
	Values func(entity *T) []any

	// Targets returns scan destinations: the key first, then Columns in order.
	Targets func(entity *T) []any

	// KeyRef points at the entity's identity field.
	KeyRef func(entity *T) *int64
}

// Set is the typed view of one table inside a [Session].
//
// Add, Update, Remove and RemoveKey only stage work; nothing reaches the
// database until the owning session commits.
type Set[T any] struct {
	session *Session
	table   Table[T]

	selectSQL string
	insertSQL string
	updateSQL string
	deleteSQL string
}

// NewSet binds table to session and prepares its statements.
func NewSet[T any](session *Session, table Table[T]) *Set[T] {
	columns := strings.Join(table.Columns, ", ")

	placeholders := make([]string, len(table.Columns))
	assignments := make([]string, len(table.Columns))
	for i, column := range table.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}

	return &Set[T]{
		session: session,
		table:   table,

		selectSQL: fmt.Sprintf(`SELECT %s, %s FROM %s`, table.Key, columns, table.Name),
		insertSQL: fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
			table.Name, columns, strings.Join(placeholders, ", "), table.Key),
		updateSQL: fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d`,
			table.Name, strings.Join(assignments, ", "), table.Key, len(table.Columns)+1),
		deleteSQL: fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Name, table.Key),
	}
}

// Session returns the unit of work this set stages into.
func (set *Set[T]) Session() *Session {
	return set.session
}

// Add stages an insert. The generated key is written back into entity on commit.
func (set *Set[T]) Add(entity *T) {
	set.session.Stage(Change{
		SQL:  set.insertSQL,
		Args: set.table.Values(entity),
		Returning: func(row pgx.Row) error {
			return row.Scan(set.table.KeyRef(entity))
		},
	})
}

// Update stages a full-row replacement keyed by the entity's identity.
func (set *Set[T]) Update(entity *T) {
	args := append(set.table.Values(entity), *set.table.KeyRef(entity))
	set.session.Stage(Change{SQL: set.updateSQL, Args: args})
}

// Remove stages deletion of entity.
func (set *Set[T]) Remove(entity *T) {
	set.RemoveKey(*set.table.KeyRef(entity))
}

// RemoveKey stages deletion of the row with the given key.
func (set *Set[T]) RemoveKey(key int64) {
	set.session.Stage(Change{SQL: set.deleteSQL, Args: []any{key}})
}

// All returns every row ordered by key. An empty table yields an empty, non-nil slice.
func (set *Set[T]) All(ctx context.Context) ([]*T, error) {
	rows, err := set.session.Query(ctx, set.selectSQL+" ORDER BY "+set.table.Key)
	if err != nil {
		return nil, err
	}

	entities, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*T, error) {
		entity := new(T)
		return entity, row.Scan(set.table.Targets(entity)...)
	})
	if err != nil {
		return nil, err
	}

	if entities == nil {
		entities = []*T{}
	}
	return entities, nil
}

// Find loads the row with the given key. A missing row surfaces as [pgx.ErrNoRows].
func (set *Set[T]) Find(ctx context.Context, key int64) (*T, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1`, set.selectSQL, set.table.Key)

	entity := new(T)
	if err := set.session.QueryRow(ctx, query, key).Scan(set.table.Targets(entity)...); err != nil {
		return nil, err
	}
	return entity, nil
}

// Any reports whether at least one row matches predicate, a SQL boolean
// expression over the table's columns using $n placeholders for args.
func (set *Set[T]) Any(ctx context.Context, predicate string, args ...any) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s)`, set.table.Name, predicate)

	var exists bool
	if err := set.session.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Has reports whether a row with the given key exists.
func (set *Set[T]) Has(ctx context.Context, key int64) (bool, error) {
	return set.Any(ctx, set.table.Key+" = $1", key)
}
