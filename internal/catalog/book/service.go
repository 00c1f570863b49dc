package book

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/dberr"
	"github.com/taibuivan/bookstore/internal/platform/validate"
	"github.com/taibuivan/bookstore/pkg/textnorm"
)

// ErrBookNotFound is returned when no book has the requested id.
var ErrBookNotFound = apperr.NotFound("Book")

// AuthorLookup answers whether an author exists. The author repository satisfies it.
type AuthorLookup interface {
	IsInDatabase(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo    Repository
	authors AuthorLookup
	logger  *slog.Logger
}

func NewService(repo Repository, authors AuthorLookup, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		authors: authors,
		logger:  logger,
	}
}

func (service *Service) ListBooks(ctx context.Context) ([]*Book, error) {
	return service.repo.FindAll(ctx)
}

func (service *Service) GetBook(ctx context.Context, id int64) (*Book, error) {
	book, err := service.repo.FindByID(ctx, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, ErrBookNotFound
	}
	return book, err
}

// CreateBook stores a new book after confirming its author exists.
func (service *Service) CreateBook(ctx context.Context, book *Book) error {
	normalize(book)
	if err := check(book); err != nil {
		return err
	}

	exists, err := service.authors.IsInDatabase(ctx, book.AuthorID)
	if err != nil {
		return err
	}
	if !exists {
		service.logger.WarnContext(ctx, "book_author_missing", slog.Int64("author_id", book.AuthorID))
		return validate.FieldError(FieldAuthorID, "Author does not exist")
	}

	outcome, err := service.repo.Create(ctx, book)
	if err != nil {
		return err
	}
	if !outcome.Changed() {
		return apperr.Internal(errors.New("book insert affected no rows"))
	}

	service.logger.InfoContext(ctx, "book_created",
		slog.Int64("book_id", book.ID),
		slog.Int64("author_id", book.AuthorID),
	)
	return nil
}

// UpdateBook merges changes into the stored book and saves the result.
func (service *Service) UpdateBook(ctx context.Context, id int64, changes UpdateBookRequest) (*Book, error) {
	exists, err := service.repo.IsInDatabase(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		service.logger.WarnContext(ctx, "book_update_missing", slog.Int64("book_id", id))
		return nil, ErrBookNotFound
	}

	book, err := service.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	changes.ApplyTo(book)
	normalize(book)
	if err := check(book); err != nil {
		return nil, err
	}

	outcome, err := service.repo.Update(ctx, book)
	if err != nil {
		return nil, err
	}
	if !outcome.Changed() {
		service.logger.ErrorContext(ctx, "book_update_failed", slog.Int64("book_id", id))
		return nil, apperr.WriteFailed("Book update failed")
	}

	service.logger.InfoContext(ctx, "book_updated", slog.Int64("book_id", id))
	return book, nil
}

func (service *Service) DeleteBook(ctx context.Context, id int64) error {
	book, err := service.GetBook(ctx, id)
	if err != nil {
		return err
	}

	outcome, err := service.repo.Delete(ctx, book)
	if err != nil {
		return err
	}
	if !outcome.Changed() {
		service.logger.ErrorContext(ctx, "book_delete_failed", slog.Int64("book_id", id))
		return apperr.WriteFailed("Book delete failed")
	}

	service.logger.WarnContext(ctx, "book_deleted",
		slog.Int64("book_id", book.ID),
		slog.String("title", book.Title),
		slog.String("isbn", book.ISBN),
	)
	return nil
}

func normalize(book *Book) {
	book.Title = textnorm.Line(book.Title)
	book.ISBN = textnorm.Line(book.ISBN)
	book.Summary = textnorm.TextPtr(book.Summary)
	book.Image = textnorm.LinePtr(book.Image)
}

func check(book *Book) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, book.Title)
	validator.Required(FieldISBN, book.ISBN).MaxLen(FieldISBN, book.ISBN, MaxISBNLength)
	validator.OptionalMaxLen(FieldSummary, book.Summary, MaxSummaryLength)
	validator.OptionalMaxLen(FieldImage, book.Image, MaxImageLength)
	validator.Custom(FieldAuthorID, book.AuthorID <= 0, "This field is required")

	if book.Year != nil {
		validator.Min(FieldYear, int64(*book.Year), 0).Max(FieldYear, int64(*book.Year), MaxYear)
	}
	if book.Price != nil {
		price := *book.Price
		validator.Custom(FieldPrice, price.IsNegative(), "Must not be negative")
		validator.Custom(FieldPrice, !price.Equal(price.Round(PriceScale)), "Must have at most 4 decimal places")
		validator.Custom(FieldPrice, price.Abs().GreaterThanOrEqual(priceCeiling), "Must be below 1000000000000000")
	}

	return validator.Err()
}
