package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/router"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/services"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
)

var errAccessDenied = &common.PolicyError{Message: "You do not have access to that page."}

func sessionKeys() []string { return services.SessionKeys() }

// Go navigates to a page given by name or hash. Unknown targets go through
// the router as well so the guard sends them home.
func (a *App) Go(ctx context.Context, target string) error {
	hash := target
	if p, ok := router.ParsePage(target); ok {
		hash = p.Hash()
	}
	_, err := a.router.Navigate(hash)
	return err
}

// Back returns to the previous path in the history.
func (a *App) Back(ctx context.Context) error {
	if !a.nav.Back() {
		printlnFn("Nothing to go back to.")
		return nil
	}
	_, err := a.router.Handle()
	return err
}

// Show renders the current page again.
func (a *App) Show(ctx context.Context) error {
	_, err := a.router.Handle()
	return err
}

// open navigates to p and renders it even when it is already current.
func (a *App) open(p router.Page) error {
	got, err := a.router.Navigate(p.Hash())
	if err != nil {
		return err
	}
	if got != p {
		return errAccessDenied
	}
	return nil
}

// pick maps a row number from the last rendered table of kind to its key.
func (a *App) pick(kind listKind, args []string) (string, error) {
	if len(args) < 2 {
		return "", common.NewValidationError("row", fmt.Sprintf("Which %s? Give its row number.", kind))
	}
	n, err := strconv.Atoi(args[1])
	keys := a.listed[kind]
	if err != nil || n < 1 || n > len(keys) {
		return "", common.NewValidationError("row", fmt.Sprintf("No %s in row %s.", kind, args[1]))
	}
	return keys[n-1], nil
}
