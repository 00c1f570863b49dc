package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/bookstore/internal/platform/request"
	"github.com/taibuivan/bookstore/internal/platform/respond"
)

// Handler serves /api/books. It builds a fresh Service, and with it a
// fresh unit of work, for every request.
type Handler struct {
	services func() *Service
}

func NewHandler(services func() *Service) *Handler {
	return &Handler{services: services}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listBooks)
	router.Get("/{id}", handler.getBook)
	router.Post("/", handler.createBook)
	router.Put("/{id}", handler.updateBook)
	router.Delete("/{id}", handler.deleteBook)
}

// listBooks godoc
//
// @Summary List books
// @Tags Books
// @Produce json
// @Success 200 {object} respond.SuccessEnvelope{data=[]BookResponse}
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /api/books [get]
func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.services().ListBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToResponses(books))
}

// getBook godoc
//
// @Summary Get a book
// @Tags Books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} respond.SuccessEnvelope{data=BookResponse}
// @Failure 400 {object} respond.ErrorEnvelope "Invalid id"
// @Failure 404 {object} respond.ErrorEnvelope
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /api/books/{id} [get]
func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.services().GetBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToResponse(book))
}

// createBook godoc
//
// @Summary Create a book
// @Tags Books
// @Accept json
// @Produce json
// @Param request body CreateBookRequest true "Book"
// @Success 201 {object} respond.SuccessEnvelope{data=BookResponse}
// @Failure 400 {object} respond.ErrorEnvelope "Validation failed"
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /api/books [post]
func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input CreateBookRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book := input.ToEntity()
	if err := handler.services().CreateBook(request.Context(), book); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, ToResponse(book))
}

// updateBook godoc
//
// @Summary Update a book
// @Description Omitted fields keep their stored value.
// @Tags Books
// @Accept json
// @Param id path int true "Book ID"
// @Param request body UpdateBookRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} respond.ErrorEnvelope "Validation or write failure"
// @Failure 404 {object} respond.ErrorEnvelope
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /api/books/{id} [put]
func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateBookRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.services().UpdateBook(request.Context(), bookID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// deleteBook godoc
//
// @Summary Delete a book
// @Tags Books
// @Param id path int true "Book ID"
// @Success 204
// @Failure 400 {object} respond.ErrorEnvelope "Invalid id or write failure"
// @Failure 404 {object} respond.ErrorEnvelope
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /api/books/{id} [delete]
func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.services().DeleteBook(request.Context(), bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
