package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/geeksadmin/internal/client/listview"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
)

// fillDraft sets fields from name=value arguments, or prompts for each
// configured field when there are none. An empty answer keeps the
// current value.
func (a *App) fillDraft(s listview.Screen, d *models.Draft, args []string) error {
	if len(args) > 0 {
		return d.FieldsFromArgs(args)
	}
	for _, f := range s.Fields() {
		prompt := f.Label
		if cur := d.Get(f.Name); cur != "" {
			prompt += " [" + cur + "]"
		} else if f.Required {
			prompt += " (required)"
		}

		value, err := a.ask(prompt + ": ")
		if err != nil {
			return err
		}
		if value != "" {
			d.Set(f.Name, value)
		}
	}
	return nil
}

func (a *App) add(ctx context.Context, args []string) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	if !s.CanCreate() {
		return listview.ErrNotSupported
	}

	d := s.NewDraft()
	if err := a.fillDraft(s, &d, args); err != nil {
		return err
	}
	if err := s.Submit(ctx, a.ac, d); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Created.")
	return a.show()
}

func (a *App) edit(ctx context.Context, args []string) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return errors.New("usage: edit <id> [name=value ...]")
	}

	d, err := s.EditDraft(args[0])
	if err != nil {
		return err
	}
	if err := a.fillDraft(s, &d, args[1:]); err != nil {
		return err
	}
	if err := s.Submit(ctx, a.ac, d); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Updated.")
	return a.show()
}

func (a *App) requestDelete(args []string) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: delete <id>")
	}
	if !s.CanDelete() {
		return listview.ErrNotSupported
	}
	if !s.RequestDelete(args[0]) {
		return fmt.Errorf("no record %q on this screen", args[0])
	}
	fmt.Fprintf(a.out, "Delete %s? Type 'confirm' or 'cancel'.\n", args[0])
	return nil
}

func (a *App) confirmDelete(ctx context.Context) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	id, ok := s.PendingDelete()
	if !ok {
		fmt.Fprintln(a.out, "Nothing to confirm.")
		return nil
	}
	deleted, err := s.ConfirmDelete(ctx, a.ac)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Fprintf(a.out, "Nothing deleted, %s is no longer listed.\n", id)
		return nil
	}
	fmt.Fprintf(a.out, "Deleted %s.\n", id)
	return a.show()
}

func (a *App) cancelDelete() error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	s.CancelDelete()
	fmt.Fprintln(a.out, "Cancelled.")
	return nil
}

// upload sends image files for a record, or for the screen itself when
// id is "-".
func (a *App) upload(ctx context.Context, args []string) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return errors.New("usage: upload <id|-> <file ...>")
	}
	if !s.CanUpload() {
		return listview.ErrNotSupported
	}

	id := args[0]
	if id == "-" {
		id = ""
	}

	files := make([]models.Upload, 0, len(args)-1)
	for _, path := range args[1:] {
		u, err := models.UploadFromFile(path)
		if err != nil {
			return err
		}
		files = append(files, u)
	}

	if err := s.UploadAsset(ctx, a.ac, id, files...); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Uploaded %d file(s).\n", len(files))
	return a.show()
}
