package schema

// CatalogBookTable represents the 'catalog.book' table
type CatalogBookTable struct {
	Table    string
	ID       string
	Title    string
	Year     string
	ISBN     string
	Summary  string
	Image    string
	Price    string
	AuthorID string
}

// CatalogBook is the schema definition for catalog.book
var CatalogBook = CatalogBookTable{
	Table:    "catalog.book",
	ID:       "id",
	Title:    "title",
	Year:     "year",
	ISBN:     "isbn",
	Summary:  "summary",
	Image:    "image",
	Price:    "price",
	AuthorID: "authorid",
}

// Writable lists the columns an INSERT or UPDATE sets; the identity is store-generated.
func (t CatalogBookTable) Writable() []string {
	return []string{t.Title, t.Year, t.ISBN, t.Summary, t.Image, t.Price, t.AuthorID}
}
