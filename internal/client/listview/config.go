package listview

import (
	"net/url"

	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
)

// Totals selects where the pagination total comes from.
type Totals int

const (
	// ClientTotals counts the locally filtered rows.
	ClientTotals Totals = iota
	// ServerTotals uses the total reported by the list endpoint.
	ServerTotals
)

// Column is one exported column. Display, when set, formats the value
// for the on-screen table instead of Value.
type Column[R any] struct {
	Label   string
	Value   func(R) string
	Display func(R) string
}

// Field describes one input of the create/edit form.
type Field struct {
	Name     string
	Label    string
	Required bool
}

// Config declares a screen. Decode and ID are mandatory; a nil mutation
// hook disables the matching operation.
type Config[R any] struct {
	Name     string
	ListPath string
	// Query builds the list request parameters. Defaults to the date range.
	Query func(models.FilterState) url.Values
	// Decode normalizes the list response into rows and the server total.
	Decode func(body []byte) (rows []R, total int, err error)

	ID         func(R) string
	Searchable func(R) []string
	Columns    []Column[R]

	Totals Totals
	// ServerPaging sends limit/offset; the fetched rows are one page.
	ServerPaging bool

	Fields   []Field
	Validate func(models.Draft) error
	Encode   func(models.Draft) any
	ToDraft  func(R) models.Draft

	CreatePath string
	UpdatePath func(id string) string
	// DecodeOne parses the create response for the optimistic append.
	DecodeOne  func(body []byte) (R, error)
	DeletePath func(id string) string

	// UploadPath resolves the upload endpoint. rec is the zero value when
	// id is empty.
	UploadPath  func(id string, rec R) (string, error)
	UploadField string

	ExportName string
}
