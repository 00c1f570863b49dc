package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/bookstore/internal/platform/request"
	"github.com/taibuivan/bookstore/internal/platform/respond"
)

// Handler serves /api/authors. It builds a fresh Service, and with it a
// fresh unit of work, for every request.
type Handler struct {
	services func() *Service
}

func NewHandler(services func() *Service) *Handler {
	return &Handler{services: services}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listAuthors)
	router.Get("/{id}", handler.getAuthor)
	router.Post("/", handler.createAuthor)
	router.Put("/{id}", handler.updateAuthor)
	router.Delete("/{id}", handler.deleteAuthor)
}

// listAuthors godoc
//
// @Summary List authors
// @Tags Authors
// @Produce json
// @Success 200 {object} respond.SuccessEnvelope{data=[]AuthorResponse}
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /api/authors [get]
func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.services().ListAuthors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToResponses(authors))
}

// getAuthor godoc
//
// @Summary Get a author
// @Tags Authors
// @Produce json
// @Param id path int true "Author ID"
// @Success 200 {object} respond.SuccessEnvelope{data=AuthorResponse}
// @Failure 400 {object} respond.ErrorEnvelope "Invalid id"
// @Failure 404 {object} respond.ErrorEnvelope
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /api/authors/{id} [get]
func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, err := handler.services().GetAuthor(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ToResponse(author))
}

// createAuthor godoc
//
// @Summary Create a author
// @Tags Authors
// @Accept json
// @Produce json
// @Param request body CreateAuthorRequest true "Author"
// @Success 201 {object} respond.SuccessEnvelope{data=AuthorResponse}
// @Failure 400 {object} respond.ErrorEnvelope "Validation failed"
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /api/authors [post]
func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	var input CreateAuthorRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	author := input.ToEntity()
	if err := handler.services().CreateAuthor(request.Context(), author); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, ToResponse(author))
}

// updateAuthor godoc
//
// @Summary Update a author
// @Description Omitted fields keep their stored value.
// @Tags Authors
// @Accept json
// @Param id path int true "Author ID"
// @Param request body UpdateAuthorRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} respond.ErrorEnvelope "Validation or write failure"
// @Failure 404 {object} respond.ErrorEnvelope
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /api/authors/{id} [put]
func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateAuthorRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.services().UpdateAuthor(request.Context(), authorID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// deleteAuthor godoc
//
// @Summary Delete a author
// @Tags Authors
// @Param id path int true "Author ID"
// @Success 204
// @Failure 400 {object} respond.ErrorEnvelope "Invalid id or write failure"
// @Failure 404 {object} respond.ErrorEnvelope
// @Failure 500 {object} respond.ErrorEnvelope
// @Router /api/authors/{id} [delete]
func (handler *Handler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.services().DeleteAuthor(request.Context(), authorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
