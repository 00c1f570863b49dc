package book

import (
	"math"

	"github.com/shopspring/decimal"
)

// Book is a catalog entry written by one author.
type Book struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	Year     *int             `json:"year"`
	ISBN     string           `json:"isbn"`
	Summary  *string          `json:"summary"`
	Image    *string          `json:"image"`
	Price    *decimal.Decimal `json:"price"`
	AuthorID int64            `json:"author_id"`
}

// Global field names for validation
const (
	FieldTitle    = "title"
	FieldYear     = "year"
	FieldISBN     = "isbn"
	FieldSummary  = "summary"
	FieldImage    = "image"
	FieldPrice    = "price"
	FieldAuthorID = "author_id"
)

// Column limits, in characters.
const (
	MaxISBNLength    = 50
	MaxSummaryLength = 500
	MaxImageLength   = 150
)

// Bounds of the year and price columns (INTEGER and NUMERIC(19,4)).
const (
	MaxYear     = math.MaxInt32
	PriceScale  = 4
	PriceDigits = 15
)

// priceCeiling is the smallest magnitude the price column cannot hold.
var priceCeiling = decimal.New(1, PriceDigits)
