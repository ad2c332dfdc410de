package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/auth"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/repositories/kv"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/store"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

type fixture struct {
	repo   kv.Repository
	store  *store.Store
	tokens *auth.TokenIssuer
	svc    AuthService
	events []SessionEvent
}

func newFixture(t *testing.T, repo kv.Repository) *fixture {
	t.Helper()
	st := store.New(repo)
	require.NoError(t, st.Load(context.Background()))

	f := &fixture{repo: repo, store: st, tokens: auth.NewTokenIssuer([]byte("test-secret"), time.Hour)}
	f.svc = NewAuthService(st, repo, f.tokens)
	f.svc.Subscribe(func(ev SessionEvent) { f.events = append(f.events, ev) })
	return f
}

func (f *fixture) kinds() []EventKind {
	var out []EventKind
	for _, ev := range f.events {
		out = append(out, ev.Kind)
	}
	return out
}

// failingDeleteRepo rejects Delete calls.
type failingDeleteRepo struct {
	*kv.MemoryRepository
}

func (failingDeleteRepo) Delete(context.Context, ...string) error {
	return errors.New("read-only")
}

// ---- tests ----

func TestRegisterVerifyLoginScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, kv.NewMemoryRepository())

	acc, err := f.svc.Register(ctx, models.RegisterInput{FirstName: "Alice", LastName: "Liddell", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, acc.Role)
	assert.False(t, acc.Verified)

	pending, err := f.svc.PendingVerification(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", pending)

	_, err = f.svc.Login(ctx, "alice@x.com", "secret1")
	require.ErrorIs(t, err, common.ErrAuthFailure)
	var ae *common.AuthError
	require.ErrorAs(t, err, &ae)
	assert.True(t, ae.Unverified)
	assert.Equal(t, "Please verify your email before logging in.", ae.Hint)
	_, ok := f.svc.Principal()
	assert.False(t, ok)

	email, err := f.svc.SimulateVerify(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", email)
	pending, err = f.svc.PendingVerification(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = f.svc.Login(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	p, ok := f.svc.Principal()
	require.True(t, ok)
	assert.Equal(t, "Alice", p.FirstName)
	assert.Equal(t, models.RoleUser, f.svc.CurrentRole())

	assert.Equal(t, []EventKind{EventRegistered, EventVerified, EventLoggedIn}, f.kinds())
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name, email, password string
	}{
		{"unknown email", "nobody@x.com", "Password123!"},
		{"wrong password", "admin@example.com", "nope"},
		{"email case differs", "ADMIN@example.com", "Password123!"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, kv.NewMemoryRepository())

			_, err := f.svc.Login(ctx, tt.email, tt.password)

			var ae *common.AuthError
			require.ErrorAs(t, err, &ae)
			assert.False(t, ae.Unverified)
			assert.Equal(t, "Invalid email or password.", common.Message(err))
			assert.Equal(t, models.RoleUnauthenticated, f.svc.CurrentRole())
			_, ok, _ := f.repo.Get(ctx, TokenKey)
			assert.False(t, ok)
			assert.Empty(t, f.events)
		})
	}
}

func TestLogin_PersistsSignedToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, kv.NewMemoryRepository())

	acc, err := f.svc.Login(ctx, "  admin@example.com ", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, f.svc.CurrentRole())

	tok, ok, err := f.repo.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, acc.Email, tok)

	sub, err := f.tokens.Subject(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", sub)
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewMemoryRepository()
	first := newFixture(t, repo)
	_, err := first.svc.Login(ctx, "admin@example.com", "Password123!")
	require.NoError(t, err)

	t.Run("valid token restores principal", func(t *testing.T) {
		f := newFixture(t, repo)
		require.NoError(t, f.svc.Restore(ctx))
		p, ok := f.svc.Principal()
		require.True(t, ok)
		assert.Equal(t, "admin@example.com", p.Email)
		assert.Equal(t, []EventKind{EventRestored}, f.kinds())
	})

	t.Run("garbage token stays unauthenticated", func(t *testing.T) {
		r := kv.NewMemoryRepository()
		require.NoError(t, r.Set(ctx, TokenKey, "admin@example.com"))
		f := newFixture(t, r)
		require.NoError(t, f.svc.Restore(ctx))
		assert.Equal(t, models.RoleUnauthenticated, f.svc.CurrentRole())
		assert.Empty(t, f.events)
	})

	t.Run("token for deleted account stays unauthenticated", func(t *testing.T) {
		r := kv.NewMemoryRepository()
		tok, err := auth.NewTokenIssuer([]byte("test-secret"), time.Hour).Issue("gone@x.com")
		require.NoError(t, err)
		require.NoError(t, r.Set(ctx, TokenKey, tok))
		f := newFixture(t, r)
		require.NoError(t, f.svc.Restore(ctx))
		_, ok := f.svc.Principal()
		assert.False(t, ok)
	})

	t.Run("no token", func(t *testing.T) {
		f := newFixture(t, kv.NewMemoryRepository())
		require.NoError(t, f.svc.Restore(ctx))
		assert.Equal(t, models.RoleUnauthenticated, f.svc.CurrentRole())
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, kv.NewMemoryRepository())
	_, err := f.svc.Login(ctx, "admin@example.com", "Password123!")
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx))
	assert.Equal(t, models.RoleUnauthenticated, f.svc.CurrentRole())
	_, ok, _ := f.repo.Get(ctx, TokenKey)
	assert.False(t, ok)

	require.NoError(t, f.svc.Logout(ctx), "logout when logged out is fine")
	assert.Equal(t, []EventKind{EventLoggedIn, EventLoggedOut, EventLoggedOut}, f.kinds())
}

func TestLogout_ClearsPrincipalEvenWhenDeleteFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, failingDeleteRepo{kv.NewMemoryRepository()})
	_, err := f.svc.Login(ctx, "admin@example.com", "Password123!")
	require.NoError(t, err)

	err = f.svc.Logout(ctx)
	require.ErrorContains(t, err, "remove session token")
	_, ok := f.svc.Principal()
	assert.False(t, ok)
}

func TestPrincipal_ReflectsStoreEdits(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, kv.NewMemoryRepository())
	acc, err := f.store.CreateAccount(ctx, models.AccountInput{FirstName: "Bo", LastName: "Ng", Email: "bo@x.com", Password: "secret1", Verified: true})
	require.NoError(t, err)
	_, err = f.svc.Login(ctx, "bo@x.com", "secret1")
	require.NoError(t, err)

	_, err = f.store.UpdateAccount(ctx, acc.Key, models.AccountInput{FirstName: "Bo", LastName: "Ng", Email: "bo@x.com", Role: models.RoleAdmin, Verified: true})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, f.svc.CurrentRole())

	require.NoError(t, f.store.DeleteAccount(ctx, acc.Key, ""))
	assert.Equal(t, models.RoleUnauthenticated, f.svc.CurrentRole())
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   models.RegisterInput
		msg  string
	}{
		{"missing field", models.RegisterInput{FirstName: "A", Email: "a@x.com", Password: "secret1"}, "Please fill in all fields."},
		{"blank password", models.RegisterInput{FirstName: "A", LastName: "B", Email: "a@x.com"}, "Please fill in all fields."},
		{"short password", models.RegisterInput{FirstName: "A", LastName: "B", Email: "a@x.com", Password: "12345"}, "Password must be at least 6 characters."},
		{"duplicate", models.RegisterInput{FirstName: "A", LastName: "B", Email: "admin@example.com", Password: "secret1"}, "An account with that email already exists."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, kv.NewMemoryRepository())

			_, err := f.svc.Register(ctx, tt.in)

			require.ErrorIs(t, err, common.ErrValidation)
			assert.Equal(t, tt.msg, common.Message(err))
			assert.Len(t, f.store.Accounts(), 1)
			pending, _ := f.svc.PendingVerification(ctx)
			assert.Empty(t, pending)
		})
	}
}

func TestSimulateVerify_NothingPending(t *testing.T) {
	f := newFixture(t, kv.NewMemoryRepository())

	_, err := f.svc.SimulateVerify(context.Background())
	require.ErrorIs(t, err, common.ErrNoPendingVerification)
}

func TestSimulateVerify_AccountDeletedMeanwhile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, kv.NewMemoryRepository())
	acc, err := f.svc.Register(ctx, models.RegisterInput{FirstName: "A", LastName: "B", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, f.store.DeleteAccount(ctx, acc.Key, ""))

	email, err := f.svc.SimulateVerify(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
	pending, _ := f.svc.PendingVerification(ctx)
	assert.Empty(t, pending)
}

func TestSessionKeys(t *testing.T) {
	assert.ElementsMatch(t, []string{"auth_token", "unverified_email"}, SessionKeys())
}
