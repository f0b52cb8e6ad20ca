package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/storefront/internal/common"
)

// Test seams for the interactive input helpers.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// Login prompts for credentials and signs the user in. The server's failure
// message is surfaced to the user; the session is left untouched on failure.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, password); err != nil {
		a.log.Error(ctx, "sign-in failed", "error", err)
		return err
	}

	printlnFn("Signed in as", a.session.CurrentUser().Email)
	a.syncAuthState(ctx)
	return nil
}

// Register prompts for the registration fields and creates an account. On
// success the user is signed in right away, same as Login.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, email, password, fullName); err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		return err
	}

	printlnFn("Account created, signed in as", a.session.CurrentUser().Email)
	a.syncAuthState(ctx)
	return nil
}

// Logout ends the session locally. No server call is made.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "sign-out failed", "error", err)
		return err
	}
	a.syncAuthState(ctx)
	printlnFn("Signed out")
	return nil
}
