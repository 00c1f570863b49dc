package schema

// CatalogAuthorTable represents the 'catalog.author' table
type CatalogAuthorTable struct {
	Table     string
	ID        string
	FirstName string
	LastName  string
	Bio       string
}

// CatalogAuthor is the schema definition for catalog.author
var CatalogAuthor = CatalogAuthorTable{
	Table:     "catalog.author",
	ID:        "id",
	FirstName: "firstname",
	LastName:  "lastname",
	Bio:       "bio",
}

// Writable lists the columns an INSERT or UPDATE sets; the identity is store-generated.
func (t CatalogAuthorTable) Writable() []string {
	return []string{t.FirstName, t.LastName, t.Bio}
}
