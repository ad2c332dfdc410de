package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/router"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration form and creates an unverified
// account. On success the verify page is shown.
func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("You are already logged in. Log out to register a new account.")
		return nil
	}
	if err := a.enter(router.PageRegister); err != nil {
		return err
	}

	var in models.RegisterInput
	var err error
	if in.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if in.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if in.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	in.Password = string(password)

	if _, err := a.auth.Register(ctx, in); err != nil {
		return err
	}
	_, err = a.router.Navigate(router.PageVerify.Hash())
	return err
}

// Verify simulates clicking the link sent to the pending email and moves
// on to the login page.
func (a *App) Verify(ctx context.Context) error {
	if _, err := a.auth.SimulateVerify(ctx); err != nil {
		if errors.Is(err, common.ErrNoPendingVerification) {
			printlnFn("Nothing to verify.")
			return nil
		}
		return err
	}
	_, err := a.router.Navigate(router.PageLogin.Hash())
	return err
}

// Login prompts for credentials and opens the profile page on success.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("You are already logged in.")
		return nil
	}
	if err := a.enter(router.PageLogin); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}

	if _, err := a.auth.Login(ctx, email, string(password)); err != nil {
		return err
	}
	_, err = a.router.Navigate(router.PageProfile.Hash())
	return err
}

// Logout ends the session and returns to the home page.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You are not logged in.")
		return nil
	}
	err := a.auth.Logout(ctx)
	if _, navErr := a.router.Navigate(router.PageHome.Hash()); navErr != nil && err == nil {
		err = navErr
	}
	return err
}

// GetStarted opens the profile when logged in and the login page otherwise.
func (a *App) GetStarted(ctx context.Context) error {
	target := router.PageLogin
	if a.isLoggedIn() {
		target = router.PageProfile
	}
	_, err := a.router.Navigate(target.Hash())
	return err
}

// Reset wipes the stored data and the session, then reseeds.
func (a *App) Reset(ctx context.Context) error {
	ok, err := Confirm(a.reader, "This deletes all accounts, departments, employees and requests. Continue?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled.")
		return nil
	}

	if a.isLoggedIn() {
		if err := a.auth.Logout(ctx); err != nil {
			return err
		}
	}
	// The reload that follows re-renders whatever the navigator points at.
	a.nav.SetPath(router.PageHome.Hash())
	if err := a.store.Reset(ctx, sessionKeys()...); err != nil {
		return fmt.Errorf("reset demo data: %w", err)
	}
	printlnFn("Demo data has been reset.")
	return nil
}
