package book

import (
	"github.com/shopspring/decimal"

	"github.com/taibuivan/bookstore/pkg/patch"
	"github.com/taibuivan/bookstore/pkg/slice"
)

// CreateBookRequest is the body of POST /api/books.
type CreateBookRequest struct {
	Title    string           `json:"title"`
	Year     *int             `json:"year"`
	ISBN     string           `json:"isbn"`
	Summary  *string          `json:"summary"`
	Image    *string          `json:"image"`
	Price    *decimal.Decimal `json:"price" swaggertype:"string" example:"12.50"`
	AuthorID int64            `json:"author_id"`
}

// UpdateBookRequest is the body of PUT /api/books/{id}.
// Omitted fields keep their stored value. ISBN and author are fixed at creation.
type UpdateBookRequest struct {
	Title   *string          `json:"title"`
	Year    *int             `json:"year"`
	Summary *string          `json:"summary"`
	Image   *string          `json:"image"`
	Price   *decimal.Decimal `json:"price" swaggertype:"string" example:"12.50"`
}

// BookResponse is the public representation of a book.
type BookResponse struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	Year     *int             `json:"year"`
	ISBN     string           `json:"isbn"`
	Summary  *string          `json:"summary"`
	Image    *string          `json:"image"`
	Price    *decimal.Decimal `json:"price" swaggertype:"string" example:"12.50"`
	AuthorID int64            `json:"author_id"`
}

// ToEntity builds a new, unsaved book.
func (request CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title:    request.Title,
		Year:     request.Year,
		ISBN:     request.ISBN,
		Summary:  request.Summary,
		Image:    request.Image,
		Price:    request.Price,
		AuthorID: request.AuthorID,
	}
}

// ApplyTo overlays the supplied fields onto a stored book.
func (request UpdateBookRequest) ApplyTo(b *Book) {
	b.Title = patch.Value(request.Title, b.Title)
	b.Year = patch.Optional(request.Year, b.Year)
	b.Summary = patch.Optional(request.Summary, b.Summary)
	b.Image = patch.Optional(request.Image, b.Image)
	b.Price = patch.Optional(request.Price, b.Price)
}

func ToResponse(b *Book) BookResponse {
	return BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		Year:     b.Year,
		ISBN:     b.ISBN,
		Summary:  b.Summary,
		Image:    b.Image,
		Price:    b.Price,
		AuthorID: b.AuthorID,
	}
}

func ToResponses(books []*Book) []BookResponse {
	if len(books) == 0 {
		return []BookResponse{}
	}
	return slice.Map(books, ToResponse)
}

