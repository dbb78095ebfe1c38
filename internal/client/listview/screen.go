package listview

import (
	"context"

	"github.com/dmitrijs2005/geeksadmin/internal/client/export"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
)

// Screen is the record-type independent surface of a View, used by the
// console to drive any screen.
type Screen interface {
	Name() string
	ServerPaging() bool
	Fields() []Field
	CanCreate() bool
	CanUpdate() bool
	CanDelete() bool
	CanUpload() bool

	Load(ctx context.Context, ac models.AuthContext, filters models.FilterState) error
	Loading() bool
	LastError() error
	Filters() models.FilterState
	SetFilters(f models.FilterState)
	Total() int
	Table() Table
	Export() export.Blob

	NewDraft() models.Draft
	EditDraft(id string) (models.Draft, error)
	Submit(ctx context.Context, ac models.AuthContext, d models.Draft) error

	RequestDelete(id string) bool
	CancelDelete()
	PendingDelete() (string, bool)
	ConfirmDelete(ctx context.Context, ac models.AuthContext) (bool, error)

	UploadAsset(ctx context.Context, ac models.AuthContext, id string, files ...models.Upload) error
}

var _ Screen = (*View[struct{}])(nil)
