package author

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/dberr"
	"github.com/taibuivan/bookstore/internal/platform/validate"
	"github.com/taibuivan/bookstore/pkg/textnorm"
)

// ErrAuthorNotFound is returned when no author has the requested id.
var ErrAuthorNotFound = apperr.NotFound("Author")

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListAuthors(ctx context.Context) ([]*Author, error) {
	return service.repo.FindAll(ctx)
}

func (service *Service) GetAuthor(ctx context.Context, id int64) (*Author, error) {
	author, err := service.repo.FindByID(ctx, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, ErrAuthorNotFound
	}
	return author, err
}

func (service *Service) CreateAuthor(ctx context.Context, author *Author) error {
	normalize(author)
	if err := check(author); err != nil {
		return err
	}

	outcome, err := service.repo.Create(ctx, author)
	if err != nil {
		return err
	}
	if !outcome.Changed() {
		return apperr.Internal(errors.New("author insert affected no rows"))
	}

	service.logger.InfoContext(ctx, "author_created", slog.Int64("author_id", author.ID))
	return nil
}

// UpdateAuthor merges changes into the stored author and saves the result.
func (service *Service) UpdateAuthor(ctx context.Context, id int64, changes UpdateAuthorRequest) (*Author, error) {
	exists, err := service.repo.IsInDatabase(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		service.logger.WarnContext(ctx, "author_update_missing", slog.Int64("author_id", id))
		return nil, ErrAuthorNotFound
	}

	author, err := service.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	changes.ApplyTo(author)
	normalize(author)
	if err := check(author); err != nil {
		return nil, err
	}

	outcome, err := service.repo.Update(ctx, author)
	if err != nil {
		return nil, err
	}
	if !outcome.Changed() {
		service.logger.ErrorContext(ctx, "author_update_failed", slog.Int64("author_id", id))
		return nil, apperr.WriteFailed("Author update failed")
	}

	service.logger.InfoContext(ctx, "author_updated", slog.Int64("author_id", id))
	return author, nil
}

// DeleteAuthor removes an author together with the author's books.
func (service *Service) DeleteAuthor(ctx context.Context, id int64) error {
	author, err := service.GetAuthor(ctx, id)
	if err != nil {
		return err
	}

	outcome, err := service.repo.Delete(ctx, author)
	if err != nil {
		return err
	}
	if !outcome.Changed() {
		service.logger.ErrorContext(ctx, "author_delete_failed", slog.Int64("author_id", id))
		return apperr.WriteFailed("Author delete failed")
	}

	service.logger.WarnContext(ctx, "author_deleted",
		slog.Int64("author_id", author.ID),
		slog.String("first_name", author.FirstName),
		slog.String("last_name", author.LastName),
	)
	return nil
}

func normalize(author *Author) {
	author.FirstName = textnorm.Line(author.FirstName)
	author.LastName = textnorm.Line(author.LastName)
	author.Bio = textnorm.Text(author.Bio)
}

func check(author *Author) error {
	validator := &validate.Validator{}

	validator.Required(FieldFirstName, author.FirstName).MaxLen(FieldFirstName, author.FirstName, MaxNameLength)
	validator.Required(FieldLastName, author.LastName).MaxLen(FieldLastName, author.LastName, MaxNameLength)
	validator.Required(FieldBio, author.Bio)

	return validator.Err()
}
