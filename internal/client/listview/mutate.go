package listview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/geeksadmin/internal/client/client"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
	"github.com/dmitrijs2005/geeksadmin/internal/common"
)

// NewDraft returns an empty form with every configured field present.
func (v *View[R]) NewDraft() models.Draft {
	d := models.Draft{Fields: make(map[string]string, len(v.cfg.Fields))}
	for _, f := range v.cfg.Fields {
		d.Fields[f.Name] = ""
	}
	return d
}

// EditDraft returns the form of an existing record.
func (v *View[R]) EditDraft(id string) (models.Draft, error) {
	if !v.CanUpdate() {
		return models.Draft{}, ErrNotSupported
	}
	v.mu.Lock()
	rec, i := v.find(id)
	v.mu.Unlock()
	if i < 0 {
		return models.Draft{}, fmt.Errorf("%s %q: %w", v.cfg.Name, id, common.ErrNotFound)
	}

	d := v.NewDraft()
	if v.cfg.ToDraft != nil {
		for k, val := range v.cfg.ToDraft(rec).Fields {
			d.Set(k, val)
		}
	}
	d.ID = id
	return d, nil
}

func (v *View[R]) validate(d models.Draft) error {
	var missing []string
	for _, f := range v.cfg.Fields {
		if f.Required && d.Get(f.Name) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing, Reason: "required"}
	}
	if v.cfg.Validate != nil {
		return v.cfg.Validate(d)
	}
	return nil
}

// Submit creates (empty draft ID) or updates a record. The draft is
// validated before any request. A created record is appended locally
// when the response carries it; in both cases the view is then reloaded.
func (v *View[R]) Submit(ctx context.Context, ac models.AuthContext, d models.Draft) error {
	if d.IsNew() && !v.CanCreate() || !d.IsNew() && !v.CanUpdate() {
		return ErrNotSupported
	}
	if err := client.Authorize(ac); err != nil {
		return err
	}
	if err := v.validate(d); err != nil {
		return err
	}

	if !d.IsNew() {
		if err := v.client.Send(ctx, ac, http.MethodPut, v.cfg.UpdatePath(d.ID), v.cfg.Encode(d), nil); err != nil {
			return fmt.Errorf("update %s %q: %w", v.cfg.Name, d.ID, err)
		}
		v.log.Info(ctx, "record updated", "id", d.ID)
		v.reload(ctx, ac)
		return nil
	}

	var body json.RawMessage
	if err := v.client.Send(ctx, ac, http.MethodPost, v.cfg.CreatePath, v.cfg.Encode(d), &body); err != nil {
		return fmt.Errorf("create %s: %w", v.cfg.Name, err)
	}

	if v.cfg.DecodeOne != nil && len(body) > 0 {
		rec, err := v.cfg.DecodeOne(body)
		switch {
		case err != nil:
			v.log.Warn(ctx, "create response not decodable", "error", err)
		case v.cfg.ID(rec) == "":
			v.log.Warn(ctx, "created record carries no id")
		default:
			v.mu.Lock()
			v.rows = append(v.rows, rec)
			v.total++
			v.mu.Unlock()
			v.log.Info(ctx, "record created", "id", v.cfg.ID(rec))
		}
	}

	v.reload(ctx, ac)
	return nil
}

// RequestDelete marks id as the delete candidate. It reports false and
// changes nothing when id is not in the collection.
func (v *View[R]) RequestDelete(id string) bool {
	if !v.CanDelete() {
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, i := v.find(id); i < 0 {
		return false
	}
	v.pending = id
	return true
}

func (v *View[R]) CancelDelete() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pending = ""
}

// PendingDelete returns the current delete candidate.
func (v *View[R]) PendingDelete() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pending, v.pending != ""
}

// ConfirmDelete deletes the candidate remotely and, on success, removes
// it from the collection without a reload. It reports whether a record
// was deleted: without a candidate, or when the candidate has left the
// collection, nothing happens. The candidate is cleared either way.
func (v *View[R]) ConfirmDelete(ctx context.Context, ac models.AuthContext) (bool, error) {
	v.mu.Lock()
	id := v.pending
	v.pending = ""
	_, i := v.find(id)
	v.mu.Unlock()

	if id == "" || i < 0 {
		return false, nil
	}
	if err := client.Authorize(ac); err != nil {
		return false, err
	}

	if err := v.client.Send(ctx, ac, http.MethodDelete, v.cfg.DeletePath(id), nil, nil); err != nil {
		return false, fmt.Errorf("delete %s %q: %w", v.cfg.Name, id, err)
	}

	v.mu.Lock()
	if _, i := v.find(id); i >= 0 {
		v.rows = append(v.rows[:i:i], v.rows[i+1:]...)
		if v.total > 0 {
			v.total--
		}
	}
	v.mu.Unlock()

	v.log.Info(ctx, "record deleted", "id", id)
	return true, nil
}

// UploadAsset uploads files for the record id and reloads on success.
// No files means no request. Failures wrap common.ErrUpload, except
// authorization failures which stay common.ErrUnauthorized.
func (v *View[R]) UploadAsset(ctx context.Context, ac models.AuthContext, id string, files ...models.Upload) error {
	if !v.CanUpload() {
		return ErrNotSupported
	}
	if len(files) == 0 {
		return nil
	}
	if err := client.Authorize(ac); err != nil {
		return err
	}

	var rec R
	if id != "" {
		v.mu.Lock()
		r, i := v.find(id)
		v.mu.Unlock()
		if i < 0 {
			return fmt.Errorf("%s %q: %w", v.cfg.Name, id, common.ErrNotFound)
		}
		rec = r
	}

	path, err := v.cfg.UploadPath(id, rec)
	if err != nil {
		return err
	}

	if err := v.client.Upload(ctx, ac, path, v.cfg.UploadField, files, nil); err != nil {
		v.log.Warn(ctx, "upload failed", "id", id, "error", err)
		if errors.Is(err, common.ErrUnauthorized) {
			return err
		}
		return fmt.Errorf("%w: %w", common.ErrUpload, err)
	}

	v.log.Info(ctx, "asset uploaded", "id", id, "files", len(files))
	v.reload(ctx, ac)
	return nil
}
