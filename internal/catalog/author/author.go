package author

// Author is a writer whose books are listed in the catalog.
// Books point back through Book.AuthorID and are deleted with their author.
type Author struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

// Global field names for validation
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldBio       = "bio"
)

// MaxNameLength bounds first and last names, in characters.
const MaxNameLength = 50
