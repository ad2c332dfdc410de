package router

import (
	"context"
	"errors"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/logging"
)

// maxRedirects bounds one evaluation. The page table never needs more
// than two hops.
const maxRedirects = 8

var ErrRedirectLoop = errors.New("router: too many redirects")

// RoleSource reports the current principal's role.
type RoleSource interface {
	CurrentRole() models.Role
}

type Router struct {
	nav     Navigator
	roles   RoleSource
	log     logging.Logger
	current Page

	subs   []enterSubscriber
	nextID int
}

type enterSubscriber struct {
	id int
	fn func(Page)
}

type Option func(*Router)

func WithLogger(l logging.Logger) Option {
	return func(r *Router) { r.log = l }
}

func New(nav Navigator, roles RoleSource, opts ...Option) *Router {
	r := &Router{nav: nav, roles: roles, log: logging.Nop(), current: PageHome}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start evaluates the initial path, treating an empty one as home.
func (r *Router) Start() (Page, error) {
	if r.nav.Path() == "" {
		r.nav.SetPath(PageHome.Hash())
	}
	return r.Handle()
}

// Navigate sets the path to hash and evaluates it.
func (r *Router) Navigate(hash string) (Page, error) {
	r.nav.SetPath(hash)
	return r.Handle()
}

// Handle evaluates the current path, following redirects until a page can
// be entered, then notifies OnEnter subscribers with it.
func (r *Router) Handle() (Page, error) {
	ctx := context.Background()
	for range maxRedirects + 1 {
		path := r.nav.Path()
		page, redirect := r.resolve(path)
		if !redirect {
			r.current = page
			r.log.Debug(ctx, "page entered", "page", page)
			r.emit(page)
			return page, nil
		}
		r.log.Debug(ctx, "redirect", "from", path, "to", page.Hash())
		r.nav.SetPath(page.Hash())
	}
	r.log.Warn(ctx, "redirect loop", "path", r.nav.Path())
	return r.current, ErrRedirectLoop
}

// resolve applies the guard to path. It returns either the page to enter
// or, with redirect set, the page to redirect to.
func (r *Router) resolve(path string) (page Page, redirect bool) {
	page, ok := ParseHash(path)
	if !ok {
		return PageHome, true
	}

	role := r.roles.CurrentRole()
	authenticated := role != models.RoleUnauthenticated

	switch page.Access() {
	case AccessPublic:
		return page, false
	case AccessProtected:
		if !authenticated {
			return PageLogin, true
		}
		return page, false
	case AccessAdmin:
		if !authenticated {
			return PageLogin, true
		}
		if role != models.RoleAdmin {
			return PageHome, true
		}
		return page, false
	default:
		return PageHome, true
	}
}

// Current is the last page entered.
func (r *Router) Current() Page {
	return r.current
}

// OnEnter registers fn to run each time a page is entered.
func (r *Router) OnEnter(fn func(Page)) (unsubscribe func()) {
	r.nextID++
	id := r.nextID
	r.subs = append(r.subs, enterSubscriber{id: id, fn: fn})
	return func() {
		for i, sub := range r.subs {
			if sub.id == id {
				r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

func (r *Router) emit(p Page) {
	for _, sub := range append([]enterSubscriber(nil), r.subs...) {
		sub.fn(p)
	}
}
