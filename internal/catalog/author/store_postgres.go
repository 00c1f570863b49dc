package author

import (
	"context"

	"github.com/taibuivan/bookstore/internal/catalog/repository"
	"github.com/taibuivan/bookstore/internal/platform/database/schema"
	"github.com/taibuivan/bookstore/internal/platform/dberr"
	"github.com/taibuivan/bookstore/internal/platform/postgres"
)

var authorTable = postgres.Table[Author]{
	Name:    schema.CatalogAuthor.Table,
	Key:     schema.CatalogAuthor.ID,
	Columns: schema.CatalogAuthor.Writable(),
	Values: func(a *Author) []any {
		return []any{a.FirstName, a.LastName, a.Bio}
	},
	Targets: func(a *Author) []any {
		return []any{&a.ID, &a.FirstName, &a.LastName, &a.Bio}
	},
	KeyRef: func(a *Author) *int64 { return &a.ID },
}

// PostgresRepository stores authors through one request's session.
type PostgresRepository struct {
	authors *postgres.Set[Author]
}

func NewPostgresRepository(session *postgres.Session) *PostgresRepository {
	return &PostgresRepository{authors: postgres.NewSet(session, authorTable)}
}

func (store *PostgresRepository) FindAll(ctx context.Context) ([]*Author, error) {
	authors, err := store.authors.All(ctx)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	return authors, nil
}

func (store *PostgresRepository) FindByID(ctx context.Context, id int64) (*Author, error) {
	author, err := store.authors.Find(ctx, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}
	return author, nil
}

func (store *PostgresRepository) IsInDatabase(ctx context.Context, id int64) (bool, error) {
	exists, err := store.authors.Has(ctx, id)
	return exists, dberr.Wrap(err, "author_exists")
}

func (store *PostgresRepository) Create(ctx context.Context, a *Author) (repository.Outcome, error) {
	store.authors.Add(a)
	return store.save(ctx, "create_author")
}

func (store *PostgresRepository) Update(ctx context.Context, a *Author) (repository.Outcome, error) {
	store.authors.Update(a)
	return store.save(ctx, "update_author")
}

func (store *PostgresRepository) Delete(ctx context.Context, a *Author) (repository.Outcome, error) {
	store.authors.Remove(a)
	return store.save(ctx, "delete_author")
}

func (store *PostgresRepository) DeleteByID(ctx context.Context, id int64) (repository.Outcome, error) {
	store.authors.RemoveKey(id)
	return store.save(ctx, "delete_author")
}

// save commits the session and reports whether any row changed.
func (store *PostgresRepository) save(ctx context.Context, action string) (repository.Outcome, error) {
	affected, err := store.authors.Session().Commit(ctx)
	if err != nil {
		return repository.NoOp, dberr.Wrap(err, action)
	}
	return repository.FromRows(affected), nil
}
