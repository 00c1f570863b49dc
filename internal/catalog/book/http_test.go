package book_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/taibuivan/bookstore/internal/catalog/book"
	"github.com/taibuivan/bookstore/internal/catalog/repository"
	"github.com/taibuivan/bookstore/internal/platform/dberr"
)

func newRouter(repo *mockRepository, authors *mockAuthorLookup) http.Handler {
	handler := book.NewHandler(func() *book.Service { return newService(repo, authors) })

	router := chi.NewRouter()
	router.Route("/api/books", handler.RegisterRoutes)
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_GetBook(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByID", mock.Anything, int64(5)).Return(storedBook(), nil)

	recorder := serve(newRouter(repo, nil), http.MethodGet, "/api/books/5", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{
		"id":5,
		"title":"A Wizard of Earthsea",
		"year":1968,
		"isbn":"978-0-547-77374-3",
		"summary":"A young mage learns the cost of power.",
		"image":null,
		"price":"9.99",
		"author_id":7
	}}`, recorder.Body.String())
}

func TestHandler_GetBook_Errors(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByID", mock.Anything, int64(404)).Return(nil, dberr.ErrNotFound)
	router := newRouter(repo, nil)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/books/404", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/api/books/-5", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/api/books/five", "").Code)
}

func TestHandler_ListBooks_Empty(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindAll", mock.Anything).Return([]*book.Book{}, nil)

	recorder := serve(newRouter(repo, nil), http.MethodGet, "/api/books", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":[]}`, recorder.Body.String())
}

func TestHandler_CreateBook(t *testing.T) {
	body := `{"title":"Beloved","isbn":"978-1-4000-3341-6","year":1987,"price":14.5,"author_id":3}`

	t.Run("Created", func(t *testing.T) {
		repo := new(mockRepository)
		authors := new(mockAuthorLookup)
		authors.On("IsInDatabase", mock.Anything, int64(3)).Return(true, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(b *book.Book) bool {
			return b.Title == "Beloved" && *b.Year == 1987 && b.Price.String() == "14.5"
		})).Run(func(args mock.Arguments) { args.Get(1).(*book.Book).ID = 21 }).
			Return(repository.Applied, nil)

		recorder := serve(newRouter(repo, authors), http.MethodPost, "/api/books", body)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"id":21`)
	})

	t.Run("AuthorMissing", func(t *testing.T) {
		authors := new(mockAuthorLookup)
		authors.On("IsInDatabase", mock.Anything, int64(3)).Return(false, nil)

		recorder := serve(newRouter(new(mockRepository), authors), http.MethodPost, "/api/books", body)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"field":"author_id"`)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		recorder := serve(newRouter(new(mockRepository), nil), http.MethodPost, "/api/books", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_UpdateBook(t *testing.T) {
	t.Run("Updated", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("IsInDatabase", mock.Anything, int64(5)).Return(true, nil)
		repo.On("FindByID", mock.Anything, int64(5)).Return(storedBook(), nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(b *book.Book) bool {
			return b.Title == "Earthsea" && b.ISBN == "978-0-547-77374-3"
		})).Return(repository.Applied, nil)

		recorder := serve(newRouter(repo, nil), http.MethodPut, "/api/books/5", `{"title":"Earthsea"}`)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		repo.AssertExpectations(t)
	})

	t.Run("Missing", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("IsInDatabase", mock.Anything, int64(5)).Return(false, nil)

		recorder := serve(newRouter(repo, nil), http.MethodPut, "/api/books/5", `{"title":"Earthsea"}`)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("WriteFailed", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("IsInDatabase", mock.Anything, int64(5)).Return(true, nil)
		repo.On("FindByID", mock.Anything, int64(5)).Return(storedBook(), nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(repository.NoOp, nil)

		recorder := serve(newRouter(repo, nil), http.MethodPut, "/api/books/5", `{}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "WRITE_FAILED")
	})
}

func TestHandler_DeleteBook(t *testing.T) {
	repo := new(mockRepository)
	repo.On("FindByID", mock.Anything, int64(5)).Return(storedBook(), nil)
	repo.On("Delete", mock.Anything, mock.Anything).Return(repository.Applied, nil)

	recorder := serve(newRouter(repo, nil), http.MethodDelete, "/api/books/5", "")

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
