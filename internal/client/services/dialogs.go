package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/usercatalog/internal/client/models"
	"github.com/dmitrijs2005/usercatalog/internal/client/store"
)

// FormMode tells whether the form creates a user or edits an existing one.
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

// FormDialog is the add/edit session. Its draft is a copy of the record and
// never aliases the cached list.
type FormDialog struct {
	c *Catalog

	open   bool
	mode   FormMode
	target models.User
	draft  models.Draft
	saving bool
	err    string
}

// openDialogLocked reports ErrBusy when any dialog is open. c.mu must be held.
func (c *Catalog) openDialogLocked() error {
	if c.form.open || c.del.open {
		return ErrBusy
	}
	return nil
}

// OpenCreate opens the form with an empty draft.
func (f *FormDialog) OpenCreate() error {
	f.c.mu.Lock()
	if err := f.c.openDialogLocked(); err != nil {
		f.c.mu.Unlock()
		return err
	}
	f.open = true
	f.mode = FormCreate
	f.target = models.User{}
	f.draft = models.NewDraft()
	f.err = ""
	f.c.mu.Unlock()

	f.c.notify()
	return nil
}

// OpenEdit opens the form pre-filled from u.
func (f *FormDialog) OpenEdit(u models.User) error {
	if u.ID == "" {
		return fmt.Errorf("%w: cannot edit a user without id", models.ErrValidation)
	}
	f.c.mu.Lock()
	if err := f.c.openDialogLocked(); err != nil {
		f.c.mu.Unlock()
		return err
	}
	f.open = true
	f.mode = FormEdit
	f.target = u
	f.draft = u.Draft()
	f.err = ""
	f.c.mu.Unlock()

	f.c.notify()
	return nil
}

// SetField updates one draft field by column name.
func (f *FormDialog) SetField(name, value string) error {
	f.c.mu.Lock()
	defer f.c.mu.Unlock()

	if !f.open {
		return ErrNoDialog
	}
	if f.saving {
		return ErrBusy
	}
	switch strings.ToLower(name) {
	case "name":
		f.draft.Name = value
	case "email":
		f.draft.Email = value
	case "role":
		r, err := models.ParseRole(value)
		if err != nil {
			return err
		}
		f.draft.Role = r
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

// Submit validates the draft and sends it. On success the list is patched
// and the dialog closes; on failure the dialog stays open with Error set.
func (f *FormDialog) Submit(ctx context.Context) (models.User, error) {
	c := f.c
	c.mu.Lock()
	if !f.open {
		c.mu.Unlock()
		return models.User{}, ErrNoDialog
	}
	if f.saving {
		c.mu.Unlock()
		return models.User{}, ErrBusy
	}
	draft := models.Draft{
		Name:  strings.TrimSpace(f.draft.Name),
		Email: strings.TrimSpace(f.draft.Email),
		Role:  f.draft.Role,
	}
	if err := draft.Validate(); err != nil {
		f.err = err.Error()
		c.mu.Unlock()
		c.notify()
		return models.User{}, err
	}
	mode, target := f.mode, f.target
	f.saving = true
	f.err = ""
	c.mu.Unlock()
	c.notify()

	var (
		saved models.User
		err   error
	)
	if mode == FormEdit {
		saved, err = c.client.Update(ctx, target.ID, draft)
	} else {
		saved, err = c.client.Create(ctx, draft)
	}

	c.mu.Lock()
	f.saving = false
	if err != nil {
		if mode == FormEdit {
			f.err = DisplayError(err, MsgUpdateFailed)
		} else {
			f.err = DisplayError(err, MsgCreateFailed)
		}
		c.mu.Unlock()
		c.notify()
		c.logger.Warn(ctx, "saving user failed", "id", target.ID, "error", err)
		return models.User{}, err
	}

	if mode == FormEdit {
		if rerr := c.store.Replace(target.ID, saved); errors.Is(rerr, store.ErrNotFound) {
			c.logger.Debug(ctx, "updated user is not in the current list", "id", target.ID)
		}
	} else {
		c.store.InsertFront(saved)
	}
	f.open = false
	c.mu.Unlock()
	c.notify()

	c.logger.Info(ctx, "user saved", "id", saved.ID)
	return saved, nil
}

// Close closes the dialog unless a save is running. It reports whether the
// dialog is closed afterwards.
func (f *FormDialog) Close() bool {
	f.c.mu.Lock()
	if f.saving {
		f.c.mu.Unlock()
		return false
	}
	f.open = false
	f.c.mu.Unlock()

	f.c.notify()
	return true
}

func (f *FormDialog) IsOpen() bool {
	f.c.mu.Lock()
	defer f.c.mu.Unlock()
	return f.open
}

func (f *FormDialog) Saving() bool {
	f.c.mu.Lock()
	defer f.c.mu.Unlock()
	return f.saving
}

func (f *FormDialog) Mode() FormMode {
	f.c.mu.Lock()
	defer f.c.mu.Unlock()
	return f.mode
}

// Draft returns a copy of the working draft.
func (f *FormDialog) Draft() models.Draft {
	f.c.mu.Lock()
	defer f.c.mu.Unlock()
	return f.draft
}

// Error is the message of the last failed submit, empty otherwise.
func (f *FormDialog) Error() string {
	f.c.mu.Lock()
	defer f.c.mu.Unlock()
	return f.err
}

// DeleteDialog is the delete confirmation session.
type DeleteDialog struct {
	c *Catalog

	open     bool
	target   models.User
	deleting bool
	err      string
}

// Open asks for confirmation to delete u.
func (d *DeleteDialog) Open(u models.User) error {
	if u.ID == "" {
		return fmt.Errorf("%w: cannot delete a user without id", models.ErrValidation)
	}
	d.c.mu.Lock()
	if err := d.c.openDialogLocked(); err != nil {
		d.c.mu.Unlock()
		return err
	}
	d.open = true
	d.target = u
	d.err = ""
	d.c.mu.Unlock()

	d.c.notify()
	return nil
}

// Confirm deletes the target. On success it is removed from the list and
// the dialog closes; on failure the dialog stays open with Error set.
func (d *DeleteDialog) Confirm(ctx context.Context) error {
	c := d.c
	c.mu.Lock()
	if !d.open {
		c.mu.Unlock()
		return ErrNoDialog
	}
	if d.deleting {
		c.mu.Unlock()
		return ErrBusy
	}
	target := d.target
	d.deleting = true
	d.err = ""
	c.mu.Unlock()
	c.notify()

	err := c.client.Delete(ctx, target.ID)

	c.mu.Lock()
	d.deleting = false
	if err != nil {
		d.err = DisplayError(err, MsgDeleteFailed)
		c.mu.Unlock()
		c.notify()
		c.logger.Warn(ctx, "deleting user failed", "id", target.ID, "error", err)
		return err
	}
	if rerr := c.store.Remove(target.ID); errors.Is(rerr, store.ErrNotFound) {
		c.logger.Debug(ctx, "deleted user is not in the current list", "id", target.ID)
	}
	d.open = false
	c.mu.Unlock()
	c.notify()

	c.logger.Info(ctx, "user deleted", "id", target.ID)
	return nil
}

// Close closes the dialog unless a delete is running.
func (d *DeleteDialog) Close() bool {
	d.c.mu.Lock()
	if d.deleting {
		d.c.mu.Unlock()
		return false
	}
	d.open = false
	d.c.mu.Unlock()

	d.c.notify()
	return true
}

func (d *DeleteDialog) IsOpen() bool {
	d.c.mu.Lock()
	defer d.c.mu.Unlock()
	return d.open
}

func (d *DeleteDialog) Deleting() bool {
	d.c.mu.Lock()
	defer d.c.mu.Unlock()
	return d.deleting
}

func (d *DeleteDialog) Target() models.User {
	d.c.mu.Lock()
	defer d.c.mu.Unlock()
	return d.target
}

func (d *DeleteDialog) Error() string {
	d.c.mu.Lock()
	defer d.c.mu.Unlock()
	return d.err
}
