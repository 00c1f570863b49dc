package book

import "github.com/taibuivan/bookstore/internal/catalog/repository"

// Repository persists books.
type Repository interface {
	repository.Repository[Book]
}
