// Package services contains the HR desk's application services. This file
// defines the session manager: it restores a session from the durable token,
// logs principals in and out, and drives self-service registration with its
// simulated e-mail verification.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/auth"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/repositories/kv"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/logging"
)

// Keys the session keeps in the kv repository next to the store's blob.
const (
	TokenKey               = "auth_token"
	PendingVerificationKey = "unverified_email"
)

// SessionKeys lists every key the session writes, for a full reset.
func SessionKeys() []string {
	return []string{TokenKey, PendingVerificationKey}
}

const (
	hintUnverified = "Please verify your email before logging in."
	hintInvalid    = "Invalid email or password."
)

// AccountStore is the part of the store the session depends on.
type AccountStore interface {
	Account(key string) (models.Account, bool)
	AccountByEmail(email string) (models.Account, bool)
	CreateAccount(ctx context.Context, in models.AccountInput) (models.Account, error)
	VerifyAccount(ctx context.Context, email string) error
}

// AuthService defines the session operations used by the router and host.
//
// Contract:
//   - Restore: reinstall the principal from the durable token; a missing or
//     stale token leaves the session unauthenticated without error.
//   - Login: exact email, matching password and a verified account.
//   - Logout: drop the token and the principal unconditionally.
//   - Principal: the current account, re-read from the store on each call.
//   - CurrentRole: the principal's role or models.RoleUnauthenticated.
//   - Register / PendingVerification / SimulateVerify: self-service sign-up.
type AuthService interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, email, password string) (models.Account, error)
	Logout(ctx context.Context) error
	Principal() (models.Account, bool)
	CurrentRole() models.Role
	Register(ctx context.Context, in models.RegisterInput) (models.Account, error)
	PendingVerification(ctx context.Context) (string, error)
	SimulateVerify(ctx context.Context) (string, error)
	Subscribe(fn func(SessionEvent)) (unsubscribe func())
}

type EventKind string

const (
	EventRestored   EventKind = "restored"
	EventLoggedIn   EventKind = "logged_in"
	EventLoggedOut  EventKind = "logged_out"
	EventRegistered EventKind = "registered"
	EventVerified   EventKind = "verified"
)

// SessionEvent is emitted after every session change. Email is the account
// concerned, empty on logout.
type SessionEvent struct {
	Kind  EventKind
	Email string
}

type Option func(*authService)

func WithLogger(l logging.Logger) Option {
	return func(a *authService) { a.log = l }
}

// authService is the concrete AuthService. The principal is held by
// account key so edits through the store show up immediately and a deleted
// account reads as logged out.
type authService struct {
	store  AccountStore
	repo   kv.Repository
	tokens *auth.TokenIssuer
	log    logging.Logger

	principalKey string
	subs         []sessionSubscriber
	nextID       int
}

type sessionSubscriber struct {
	id int
	fn func(SessionEvent)
}

// NewAuthService constructs an AuthService over the store, the kv
// repository holding the token, and the token issuer.
func NewAuthService(st AccountStore, repo kv.Repository, tokens *auth.TokenIssuer, opts ...Option) AuthService {
	a := &authService{store: st, repo: repo, tokens: tokens, log: logging.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *authService) Restore(ctx context.Context) error {
	a.principalKey = ""

	tok, ok, err := a.repo.Get(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}
	if !ok || tok == "" {
		return nil
	}

	email, err := a.tokens.Subject(tok)
	if err != nil {
		a.log.Info(ctx, "session token rejected", "error", err)
		return nil
	}
	acc, ok := a.store.AccountByEmail(email)
	if !ok {
		a.log.Info(ctx, "session token names a missing account", "email", email)
		return nil
	}

	a.principalKey = acc.Key
	a.log.Info(ctx, "session restored", "email", acc.Email)
	a.emit(SessionEvent{Kind: EventRestored, Email: acc.Email})
	return nil
}

func (a *authService) Login(ctx context.Context, email, password string) (models.Account, error) {
	email = strings.TrimSpace(email)

	acc, ok := a.store.AccountByEmail(email)
	if !ok || subtle.ConstantTimeCompare([]byte(acc.Password), []byte(password)) != 1 {
		a.log.Warn(ctx, "login failed", "email", email, "reason", "credentials")
		return models.Account{}, &common.AuthError{Hint: hintInvalid}
	}
	if !acc.Verified {
		a.log.Warn(ctx, "login failed", "email", email, "reason", "unverified")
		return models.Account{}, &common.AuthError{Hint: hintUnverified, Unverified: true}
	}

	tok, err := a.tokens.Issue(acc.Email)
	if err != nil {
		return models.Account{}, fmt.Errorf("issue session token: %w", err)
	}
	if err := a.repo.Set(ctx, TokenKey, tok); err != nil {
		return models.Account{}, fmt.Errorf("store session token: %w", err)
	}

	a.principalKey = acc.Key
	a.log.Info(ctx, "login succeeded", "email", acc.Email, "role", acc.Role)
	a.emit(SessionEvent{Kind: EventLoggedIn, Email: acc.Email})
	return acc, nil
}

// Logout clears the principal even when the token cannot be removed; the
// error is still reported.
func (a *authService) Logout(ctx context.Context) error {
	a.principalKey = ""
	err := a.repo.Delete(ctx, TokenKey)

	a.log.Info(ctx, "logged out")
	a.emit(SessionEvent{Kind: EventLoggedOut})
	if err != nil {
		return fmt.Errorf("remove session token: %w", err)
	}
	return nil
}

func (a *authService) Principal() (models.Account, bool) {
	if a.principalKey == "" {
		return models.Account{}, false
	}
	return a.store.Account(a.principalKey)
}

func (a *authService) CurrentRole() models.Role {
	if acc, ok := a.Principal(); ok {
		return acc.Role
	}
	return models.RoleUnauthenticated
}

// Register creates an unverified user account and remembers its email as
// pending verification.
func (a *authService) Register(ctx context.Context, in models.RegisterInput) (models.Account, error) {
	in.FirstName, in.LastName, in.Email = strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName), strings.TrimSpace(in.Email)

	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return models.Account{}, common.NewValidationError("form", "Please fill in all fields.")
	}
	if utf8.RuneCountInString(in.Password) < 6 {
		return models.Account{}, common.NewValidationError("password", "Password must be at least 6 characters.")
	}

	acc, err := a.store.CreateAccount(ctx, models.AccountInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      models.RoleUser,
	})
	if err != nil {
		var ve *common.ValidationError
		if errors.As(err, &ve) && ve.Field == "email" {
			return models.Account{}, common.NewValidationError("email", "An account with that email already exists.")
		}
		return models.Account{}, err
	}

	if err := a.repo.Set(ctx, PendingVerificationKey, acc.Email); err != nil {
		return models.Account{}, fmt.Errorf("store pending verification: %w", err)
	}

	a.log.Info(ctx, "account registered", "email", acc.Email)
	a.emit(SessionEvent{Kind: EventRegistered, Email: acc.Email})
	return acc, nil
}

// PendingVerification returns the email awaiting verification, or "".
func (a *authService) PendingVerification(ctx context.Context) (string, error) {
	email, _, err := a.repo.Get(ctx, PendingVerificationKey)
	if err != nil {
		return "", fmt.Errorf("read pending verification: %w", err)
	}
	return email, nil
}

// SimulateVerify stands in for clicking the e-mailed link: it verifies the
// pending account, if it still exists, and forgets the pending email.
func (a *authService) SimulateVerify(ctx context.Context) (string, error) {
	email, err := a.PendingVerification(ctx)
	if err != nil {
		return "", err
	}
	if email == "" {
		return "", common.ErrNoPendingVerification
	}

	if err := a.store.VerifyAccount(ctx, email); err != nil && !errors.Is(err, common.ErrNotFound) {
		return "", err
	}
	if err := a.repo.Delete(ctx, PendingVerificationKey); err != nil {
		return "", fmt.Errorf("clear pending verification: %w", err)
	}

	a.log.Info(ctx, "email verified", "email", email)
	a.emit(SessionEvent{Kind: EventVerified, Email: email})
	return email, nil
}

func (a *authService) Subscribe(fn func(SessionEvent)) (unsubscribe func()) {
	a.nextID++
	id := a.nextID
	a.subs = append(a.subs, sessionSubscriber{id: id, fn: fn})
	return func() {
		for i, sub := range a.subs {
			if sub.id == id {
				a.subs = append(a.subs[:i:i], a.subs[i+1:]...)
				return
			}
		}
	}
}

func (a *authService) emit(ev SessionEvent) {
	for _, sub := range append([]sessionSubscriber(nil), a.subs...) {
		sub.fn(ev)
	}
}
