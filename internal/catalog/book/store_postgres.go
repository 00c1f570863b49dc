package book

import (
	"context"

	"github.com/taibuivan/bookstore/internal/catalog/repository"
	"github.com/taibuivan/bookstore/internal/platform/database/schema"
	"github.com/taibuivan/bookstore/internal/platform/dberr"
	"github.com/taibuivan/bookstore/internal/platform/postgres"
)

var bookTable = postgres.Table[Book]{
	Name:    schema.CatalogBook.Table,
	Key:     schema.CatalogBook.ID,
	Columns: schema.CatalogBook.Writable(),
	Values: func(b *Book) []any {
		return []any{b.Title, b.Year, b.ISBN, b.Summary, b.Image, b.Price, b.AuthorID}
	},
	Targets: func(b *Book) []any {
		return []any{&b.ID, &b.Title, &b.Year, &b.ISBN, &b.Summary, &b.Image, &b.Price, &b.AuthorID}
	},
	KeyRef: func(b *Book) *int64 { return &b.ID },
}

// PostgresRepository stores books through one request's session.
type PostgresRepository struct {
	books *postgres.Set[Book]
}

func NewPostgresRepository(session *postgres.Session) *PostgresRepository {
	return &PostgresRepository{books: postgres.NewSet(session, bookTable)}
}

func (store *PostgresRepository) FindAll(ctx context.Context) ([]*Book, error) {
	books, err := store.books.All(ctx)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	return books, nil
}

func (store *PostgresRepository) FindByID(ctx context.Context, id int64) (*Book, error) {
	book, err := store.books.Find(ctx, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}
	return book, nil
}

func (store *PostgresRepository) IsInDatabase(ctx context.Context, id int64) (bool, error) {
	exists, err := store.books.Has(ctx, id)
	return exists, dberr.Wrap(err, "book_exists")
}

func (store *PostgresRepository) Create(ctx context.Context, b *Book) (repository.Outcome, error) {
	store.books.Add(b)
	return store.save(ctx, "create_book")
}

func (store *PostgresRepository) Update(ctx context.Context, b *Book) (repository.Outcome, error) {
	store.books.Update(b)
	return store.save(ctx, "update_book")
}

func (store *PostgresRepository) Delete(ctx context.Context, b *Book) (repository.Outcome, error) {
	store.books.Remove(b)
	return store.save(ctx, "delete_book")
}

func (store *PostgresRepository) DeleteByID(ctx context.Context, id int64) (repository.Outcome, error) {
	store.books.RemoveKey(id)
	return store.save(ctx, "delete_book")
}

// save commits the session and reports whether any row changed.
func (store *PostgresRepository) save(ctx context.Context, action string) (repository.Outcome, error) {
	affected, err := store.books.Session().Commit(ctx)
	if err != nil {
		return repository.NoOp, dberr.Wrap(err, action)
	}
	return repository.FromRows(affected), nil
}
