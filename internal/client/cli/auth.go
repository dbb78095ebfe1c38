package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/geeksadmin/internal/client/listview"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
	"github.com/dmitrijs2005/geeksadmin/internal/common"
)

// restoreSession picks up the token stored by an earlier session.
func (a *App) restoreSession(ctx context.Context) {
	ac, err := a.auth.Current(ctx)
	if err != nil {
		a.log.Debug(ctx, "no stored session", "error", err)
		fmt.Fprintln(a.out, "Not signed in. Use 'login' to paste an API token.")
		return
	}
	a.ac = ac
	fmt.Fprintln(a.out, "Signed in with the stored token.")
}

// Login prompts for a token without echo, validates and stores it.
func (a *App) Login(ctx context.Context) error {
	token, err := a.askSecret("API token: ")
	if err != nil {
		return err
	}

	if err := a.auth.SignIn(ctx, token); err != nil {
		fmt.Fprintln(a.out, "Login unsuccessful:", err)
		return nil
	}
	ac, err := a.auth.Current(ctx)
	if err != nil {
		return err
	}

	a.ac = ac
	a.log.Info(ctx, "signed in")
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout forgets the stored token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		return err
	}
	a.ac = models.AuthContext{}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// report prints err for the user. An authorization failure prompts for a
// new token right away.
func (a *App) report(ctx context.Context, err error) {
	var verr *listview.ValidationError

	switch {
	case errors.Is(err, listview.ErrSuperseded):
		return
	case errors.Is(err, common.ErrUnauthorized):
		a.log.Warn(ctx, "not authorized", "error", err)
		fmt.Fprintln(a.out, "Session expired or not signed in. Please sign in.")
		a.ac = models.AuthContext{}
		if lerr := a.Login(ctx); lerr != nil {
			fmt.Fprintln(a.out, "Error:", lerr)
			return
		}
		if !a.ac.Empty() {
			fmt.Fprintln(a.out, "Run the command again.")
		}
	case errors.As(err, &verr):
		fmt.Fprintln(a.out, "Invalid input:", verr.Error())
	case errors.Is(err, listview.ErrNotSupported):
		fmt.Fprintln(a.out, "Not available on this screen.")
	case common.IsNetwork(err):
		a.log.Warn(ctx, "request failed", "error", err)
		fmt.Fprintln(a.out, "Error:", err)
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}
