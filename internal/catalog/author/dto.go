package author

import (
	"github.com/taibuivan/bookstore/pkg/patch"
	"github.com/taibuivan/bookstore/pkg/slice"
)

// CreateAuthorRequest is the body of POST /api/authors.
type CreateAuthorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

// UpdateAuthorRequest is the body of PUT /api/authors/{id}.
// Omitted fields keep their stored value.
type UpdateAuthorRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
}

// AuthorResponse is the public representation of an author.
type AuthorResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

// ToEntity builds a new, unsaved author.
func (request CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Bio:       request.Bio,
	}
}

// ApplyTo overlays the supplied fields onto a stored author.
func (request UpdateAuthorRequest) ApplyTo(a *Author) {
	a.FirstName = patch.Value(request.FirstName, a.FirstName)
	a.LastName = patch.Value(request.LastName, a.LastName)
	a.Bio = patch.Value(request.Bio, a.Bio)
}

func ToResponse(a *Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       a.Bio,
	}
}

func ToResponses(authors []*Author) []AuthorResponse {
	if len(authors) == 0 {
		return []AuthorResponse{}
	}
	return slice.Map(authors, ToResponse)
}
