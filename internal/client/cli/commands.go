package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/usercatalog/internal/client/models"
	"github.com/dmitrijs2005/usercatalog/internal/client/services"
)

// List prints the current table without fetching.
func (a *App) List(ctx context.Context) error {
	a.render()
	return nil
}

// Search sets the query and waits for the debounced fetch to settle.
func (a *App) Search(ctx context.Context, text string) error {
	a.catalog.SetQuery(text)
	if err := a.catalog.WaitIdle(ctx); err != nil {
		return err
	}
	a.render()
	return nil
}

func (a *App) Sort(ctx context.Context, column string) error {
	key, err := models.ParseSortKey(strings.ToLower(column))
	if err != nil {
		return err
	}
	a.catalog.SortBy(key)
	a.render()
	return nil
}

// Refresh reloads the list. A failed load is shown in the table.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.catalog.Refresh(ctx); err != nil && !errors.Is(err, services.ErrSuperseded) {
		a.logger.Debug(ctx, "refresh failed", "error", err)
	}
	a.render()
	return nil
}

func (a *App) Add(ctx context.Context) error {
	form := a.catalog.Form()
	if err := form.OpenCreate(); err != nil {
		return err
	}
	return a.runForm(ctx, form)
}

func (a *App) Edit(ctx context.Context, id string) error {
	u, err := a.findUser(id)
	if err != nil {
		return err
	}
	form := a.catalog.Form()
	if err := form.OpenEdit(u); err != nil {
		return err
	}
	return a.runForm(ctx, form)
}

// runForm prompts for the draft and submits it until it is saved or the
// user gives up. The dialog is closed on return.
func (a *App) runForm(ctx context.Context, form *services.FormDialog) error {
	defer form.Close()

	for {
		if err := a.promptDraft(form); err != nil {
			return err
		}

		saved, err := form.Submit(ctx)
		if err == nil {
			fmt.Fprintf(a.out, "Saved %s\n", describe(saved))
			a.render()
			return nil
		}

		fmt.Fprintln(a.out, "error:", form.Error())
		retry, err := Confirm(a.reader, "Try again?", a.out)
		if err != nil || !retry {
			return err
		}
	}
}

// promptDraft asks for each field, showing the current value. An empty
// answer keeps it.
func (a *App) promptDraft(form *services.FormDialog) error {
	d := form.Draft()
	fields := []struct {
		name    string
		prompt  string
		current string
	}{
		{"name", "Name", d.Name},
		{"email", "Email", d.Email},
		{"role", "Role (" + roleChoices() + ")", string(d.Role)},
	}

	for _, f := range fields {
		for {
			v, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.prompt, f.current), a.out)
			if err != nil {
				return err
			}
			if v == "" {
				break
			}
			if err := form.SetField(f.name, v); err != nil {
				fmt.Fprintln(a.out, "error:", err)
				continue
			}
			break
		}
	}
	return nil
}

func roleChoices() string {
	names := make([]string, len(models.Roles))
	for i, r := range models.Roles {
		names[i] = string(r)
	}
	return strings.Join(names, "/")
}

func (a *App) Delete(ctx context.Context, id string) error {
	u, err := a.findUser(id)
	if err != nil {
		return err
	}
	dlg := a.catalog.Delete()
	if err := dlg.Open(u); err != nil {
		return err
	}
	defer dlg.Close()

	prompt := fmt.Sprintf("Delete %s?", describe(u))
	for {
		ok, err := Confirm(a.reader, prompt, a.out)
		if err != nil || !ok {
			return err
		}

		if err := dlg.Confirm(ctx); err == nil {
			fmt.Fprintf(a.out, "Deleted %s\n", u.ID)
			a.render()
			return nil
		}

		fmt.Fprintln(a.out, "error:", dlg.Error())
		prompt = "Try again?"
	}
}

func describe(u models.User) string {
	return fmt.Sprintf("%s <%s> (id %s)", u.Name, u.Email, u.ID)
}
