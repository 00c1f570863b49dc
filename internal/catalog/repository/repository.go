// Package repository defines the persistence contract shared by every
// catalog entity.
package repository

import "context"

// Outcome reports whether a write changed any stored rows.
//
// Failures are never an Outcome: they come back as a non-nil error.
type Outcome int

const (
	// NoOp means the commit succeeded but touched no rows.
	NoOp Outcome = iota
	// Applied means at least one row was inserted, replaced or removed.
	Applied
)

// FromRows maps an affected-row count to an Outcome.
func FromRows(affected int64) Outcome {
	if affected > 0 {
		return Applied
	}
	return NoOp
}

// Changed reports whether o is [Applied].
func (o Outcome) Changed() bool {
	return o == Applied
}

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case NoOp:
		return "no_op"
	default:
		return "unknown"
	}
}

// Repository is the data-access contract for one entity type T.
//
// Implementations are bound to a single unit of work; every write commits
// that unit before returning. Absent rows are reported with
// [github.com/taibuivan/bookstore/internal/platform/dberr.ErrNotFound].
type Repository[T any] interface {
	// FindAll returns every stored entity ordered by id. Never nil.
	FindAll(ctx context.Context) ([]*T, error)

	// FindByID returns the entity with the given id.
	FindByID(ctx context.Context, id int64) (*T, error)

	// IsInDatabase reports whether an entity with the given id exists.
	IsInDatabase(ctx context.Context, id int64) (bool, error)

	// Create inserts entity and writes the generated id back into it.
	Create(ctx context.Context, entity *T) (Outcome, error)

	// Update replaces the stored row identified by entity's id with entity.
	Update(ctx context.Context, entity *T) (Outcome, error)

	// Delete removes a previously fetched entity.
	Delete(ctx context.Context, entity *T) (Outcome, error)

	// DeleteByID removes the entity with the given id without loading it.
	DeleteByID(ctx context.Context, id int64) (Outcome, error)
}
