package cli

import (
	"context"
	"fmt"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/router"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
)

// Accounts handles "acct", "acct add", "acct edit <n>", "acct reset <n>"
// and "acct del <n>".
func (a *App) Accounts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.open(router.PageAccounts)
	}
	if err := a.enter(router.PageAccounts); err != nil {
		return err
	}

	switch args[0] {
	case "add":
		in, err := a.accountForm(models.Account{}, true)
		if err != nil {
			return err
		}
		acc, err := a.store.CreateAccount(ctx, in)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Account %s added.", acc.Email))

	case "edit":
		key, err := a.pick(listAccounts, args)
		if err != nil {
			return err
		}
		current, ok := a.store.Account(key)
		if !ok {
			return common.ErrNotFound
		}
		in, err := a.accountForm(current, false)
		if err != nil {
			return err
		}
		acc, err := a.store.UpdateAccount(ctx, key, in)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Account %s saved.", acc.Email))

	case "reset":
		key, err := a.pick(listAccounts, args)
		if err != nil {
			return err
		}
		password, err := getPassword(a.out, "New password")
		if err != nil {
			return err
		}
		if err := a.store.ResetPassword(ctx, key, string(password)); err != nil {
			return err
		}
		printlnFn("Password updated.")

	case "del":
		key, err := a.pick(listAccounts, args)
		if err != nil {
			return err
		}
		acc, ok := a.store.Account(key)
		if !ok {
			return common.ErrNotFound
		}
		actor, _ := a.auth.Principal()
		if err := a.store.CheckDeleteAccount(key, actor.Email); err != nil {
			return err
		}
		yes, err := Confirm(a.reader, fmt.Sprintf("Delete account %s?", acc.Email), a.out)
		if err != nil || !yes {
			return err
		}
		if err := a.store.DeleteAccount(ctx, key, actor.Email); err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Account %s deleted.", acc.Email))

	default:
		printlnFn("Usage: acct [add | edit <n> | reset <n> | del <n>]")
	}
	return nil
}

// accountForm prompts for every account field. On edits a blank password
// keeps the current one.
func (a *App) accountForm(current models.Account, create bool) (models.AccountInput, error) {
	var in models.AccountInput
	var err error
	if in.FirstName, err = GetTextWithDefault(a.reader, "First name", current.FirstName, a.out); err != nil {
		return in, err
	}
	if in.LastName, err = GetTextWithDefault(a.reader, "Last name", current.LastName, a.out); err != nil {
		return in, err
	}
	if in.Email, err = GetTextWithDefault(a.reader, "Email", current.Email, a.out); err != nil {
		return in, err
	}
	role, err := GetTextWithDefault(a.reader, "Role (user/admin)", string(current.Role), a.out)
	if err != nil {
		return in, err
	}
	in.Role = models.Role(role)

	prompt := "Password"
	if !create {
		prompt = "Password (blank to keep)"
	}
	password, err := getPassword(a.out, prompt)
	if err != nil {
		return in, err
	}
	in.Password = string(password)

	if in.Verified, err = ConfirmDefault(a.reader, "Verified?", current.Verified, a.out); err != nil {
		return in, err
	}
	return in, nil
}
