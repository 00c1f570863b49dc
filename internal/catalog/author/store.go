package author

import "github.com/taibuivan/bookstore/internal/catalog/repository"

// Repository persists authors.
type Repository interface {
	repository.Repository[Author]
}
