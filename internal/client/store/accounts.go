package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
	"github.com/google/uuid"
)

func (s *Store) Accounts() []models.Account {
	return slices.Clone(s.state.Accounts)
}

func (s *Store) Account(key string) (models.Account, bool) {
	i := s.accountIndex(key)
	if i < 0 {
		return models.Account{}, false
	}
	return s.state.Accounts[i], true
}

// AccountByEmail matches the email exactly.
func (s *Store) AccountByEmail(email string) (models.Account, bool) {
	for _, a := range s.state.Accounts {
		if a.Email == email {
			return a, true
		}
	}
	return models.Account{}, false
}

func (s *Store) accountIndex(key string) int {
	return slices.IndexFunc(s.state.Accounts, func(a models.Account) bool { return a.Key == key })
}

// normalizeAccount trims the input and runs the checks that do not depend
// on other records. create selects the rules for a new account.
func normalizeAccount(in models.AccountInput, create bool) (models.AccountInput, error) {
	in.FirstName, in.LastName, in.Email = trim(in.FirstName), trim(in.LastName), trim(in.Email)

	switch {
	case in.FirstName == "":
		return in, common.NewValidationError("firstName", "First name, last name, and email are required.")
	case in.LastName == "":
		return in, common.NewValidationError("lastName", "First name, last name, and email are required.")
	case in.Email == "":
		return in, common.NewValidationError("email", "First name, last name, and email are required.")
	}
	if create && in.Password == "" {
		return in, common.NewValidationError("password", "Password is required for new accounts.")
	}
	if in.Password != "" && tooShort(in.Password) {
		return in, common.NewValidationError("password", "Password must be at least 6 characters.")
	}

	role, ok := models.ParseRole(string(in.Role))
	if !ok {
		return in, common.NewValidationError("role", "Role must be user or admin.")
	}
	in.Role = role
	return in, nil
}

// emailTaken reports whether another account, not skipKey, already uses
// email under case-insensitive comparison.
func (s *Store) emailTaken(email, skipKey string) bool {
	return slices.ContainsFunc(s.state.Accounts, func(a models.Account) bool {
		return a.Key != skipKey && sameFold(a.Email, email)
	})
}

func (s *Store) CreateAccount(ctx context.Context, in models.AccountInput) (models.Account, error) {
	in, err := normalizeAccount(in, true)
	if err != nil {
		return models.Account{}, err
	}
	if s.emailTaken(in.Email, "") {
		return models.Account{}, common.NewValidationError("email",
			fmt.Sprintf("An account with email %q already exists.", in.Email))
	}

	acc := models.Account{
		Key:       uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      in.Role,
		Verified:  in.Verified,
	}

	next := s.state.Clone()
	next.Accounts = append(next.Accounts, acc)
	if err := s.commit(ctx, next, Change{Collection: CollectionAccounts, Op: OpCreate, Key: acc.Key}); err != nil {
		return models.Account{}, err
	}
	return acc, nil
}

// UpdateAccount replaces the account's fields. A blank password keeps the
// current one.
func (s *Store) UpdateAccount(ctx context.Context, key string, in models.AccountInput) (models.Account, error) {
	i := s.accountIndex(key)
	if i < 0 {
		return models.Account{}, fmt.Errorf("account %s: %w", key, common.ErrNotFound)
	}
	in, err := normalizeAccount(in, false)
	if err != nil {
		return models.Account{}, err
	}
	if s.emailTaken(in.Email, key) {
		return models.Account{}, common.NewValidationError("email",
			fmt.Sprintf("An account with email %q already exists.", in.Email))
	}

	next := s.state.Clone()
	acc := next.Accounts[i]
	acc.FirstName, acc.LastName, acc.Email = in.FirstName, in.LastName, in.Email
	acc.Role, acc.Verified = in.Role, in.Verified
	if in.Password != "" {
		acc.Password = in.Password
	}
	next.Accounts[i] = acc

	if err := s.commit(ctx, next, Change{Collection: CollectionAccounts, Op: OpUpdate, Key: key}); err != nil {
		return models.Account{}, err
	}
	return acc, nil
}

// CheckDeleteAccount reports whether actorEmail, the principal performing
// the deletion, may delete the account. Hosts call it before asking for
// confirmation.
func (s *Store) CheckDeleteAccount(key, actorEmail string) error {
	i := s.accountIndex(key)
	if i < 0 {
		return fmt.Errorf("account %s: %w", key, common.ErrNotFound)
	}
	if actorEmail != "" && sameFold(s.state.Accounts[i].Email, actorEmail) {
		return &common.PolicyError{Message: "You cannot delete your own account while logged in."}
	}
	return nil
}

// DeleteAccount removes the account unless CheckDeleteAccount refuses.
func (s *Store) DeleteAccount(ctx context.Context, key, actorEmail string) error {
	if err := s.CheckDeleteAccount(key, actorEmail); err != nil {
		return err
	}
	i := s.accountIndex(key)
	next := s.state.Clone()
	next.Accounts = slices.Delete(next.Accounts, i, i+1)
	return s.commit(ctx, next, Change{Collection: CollectionAccounts, Op: OpDelete, Key: key})
}

// ResetPassword sets a new password of at least six characters.
func (s *Store) ResetPassword(ctx context.Context, key, password string) error {
	i := s.accountIndex(key)
	if i < 0 {
		return fmt.Errorf("account %s: %w", key, common.ErrNotFound)
	}
	if tooShort(password) {
		return common.NewValidationError("password", "Password must be at least 6 characters. Password not changed.")
	}

	next := s.state.Clone()
	next.Accounts[i].Password = password
	return s.commit(ctx, next, Change{Collection: CollectionAccounts, Op: OpUpdate, Key: key})
}

// VerifyAccount marks the account with this exact email as verified.
// Verifying a verified account is a no-op.
func (s *Store) VerifyAccount(ctx context.Context, email string) error {
	i := slices.IndexFunc(s.state.Accounts, func(a models.Account) bool { return a.Email == email })
	if i < 0 {
		return fmt.Errorf("account %q: %w", email, common.ErrNotFound)
	}
	if s.state.Accounts[i].Verified {
		return nil
	}

	next := s.state.Clone()
	next.Accounts[i].Verified = true
	return s.commit(ctx, next, Change{Collection: CollectionAccounts, Op: OpUpdate, Key: next.Accounts[i].Key})
}
