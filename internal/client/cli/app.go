package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/auth"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/config"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/repositories/kv"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/router"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/services"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/storage"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/store"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/logging"
)

// listKind names a rendered table whose row numbers commands refer to.
type listKind string

const (
	listDepartments listKind = "department"
	listEmployees   listKind = "employee"
	listAccounts    listKind = "account"
	listRequests    listKind = "request"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	store  *store.Store
	auth   services.AuthService
	nav    *router.MemoryNavigator
	router *router.Router

	reader *bufio.Reader
	out    io.Writer

	// listed maps each table to the keys of its rows as last rendered, so
	// "del 2" targets what the user saw even after other rows moved.
	listed  map[listKind][]string
	started bool
}

// NewApp opens the database named by the config and builds the app on top
// of it, reading from stdin and writing to stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	a := newApp(c, kv.NewSQLiteRepository(db), log, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

// newApp wires the store, the session, the navigator and the router over
// repo. Nothing is loaded until Run.
func newApp(c *config.Config, repo kv.Repository, log logging.Logger, in io.Reader, out io.Writer) *App {
	st := store.New(repo, store.WithLogger(log))
	tokens := auth.NewTokenIssuer([]byte(c.SecretKey), c.SessionTTL)
	as := services.NewAuthService(st, repo, tokens, services.WithLogger(log))
	nav := router.NewMemoryNavigator(router.PageHome.Hash())
	rt := router.New(nav, as, router.WithLogger(log))

	a := &App{
		config: c,
		log:    log,
		store:  st,
		auth:   as,
		nav:    nav,
		router: rt,
		reader: bufio.NewReader(in),
		out:    out,
		listed: make(map[listKind][]string),
	}

	rt.OnEnter(a.render)
	st.Subscribe(a.onStoreChange)
	as.Subscribe(a.onSessionEvent)
	return a
}

// Start loads the store, restores the session and enters the first page.
func (a *App) Start(ctx context.Context) error {
	if err := a.store.Load(ctx); err != nil {
		return err
	}
	if err := a.auth.Restore(ctx); err != nil {
		return err
	}
	a.started = true
	_, err := a.router.Start()
	return err
}

// Run starts the app and blocks in the REPL until the user exits or input
// ends.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to HR Desk (type 'help' for commands)")
	if err := a.Start(ctx); err != nil {
		return err
	}
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// Close releases the database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) status() string {
	s := "hrdesk"
	if p, ok := a.auth.Principal(); ok {
		s += " (" + p.Email + ")"
	}
	return s + " " + a.nav.Path()
}

func (a *App) isLoggedIn() bool {
	_, ok := a.auth.Principal()
	return ok
}

func (a *App) isAdmin() bool {
	p, ok := a.auth.Principal()
	return ok && p.IsAdmin()
}

// onStoreChange re-runs the guard, which re-renders the current page or
// redirects when the change took away access.
func (a *App) onStoreChange(store.Change) {
	if !a.started {
		return
	}
	if _, err := a.router.Handle(); err != nil {
		a.log.Error(context.Background(), "re-render after change", "error", err)
	}
}

func (a *App) onSessionEvent(ev services.SessionEvent) {
	switch ev.Kind {
	case services.EventRestored:
		if p, ok := a.auth.Principal(); ok {
			fmt.Fprintf(a.out, "Welcome back, %s!\n", p.FullName())
		}
	case services.EventLoggedIn:
		if p, ok := a.auth.Principal(); ok {
			fmt.Fprintf(a.out, "Logged in as %s.\n", p.FullName())
		}
	case services.EventLoggedOut:
		fmt.Fprintln(a.out, "You have been logged out.")
	case services.EventRegistered:
		fmt.Fprintf(a.out, "Account created for %s.\n", ev.Email)
	case services.EventVerified:
		fmt.Fprintf(a.out, "Email %s verified! You may now log in.\n", ev.Email)
	}
}

// enter navigates to p unless it is current and reports whether the guard
// let the user in.
func (a *App) enter(p router.Page) error {
	if a.router.Current() == p && a.nav.Path() == p.Hash() {
		return nil
	}
	got, err := a.router.Navigate(p.Hash())
	if err != nil {
		return err
	}
	if got != p {
		return errAccessDenied
	}
	return nil
}
