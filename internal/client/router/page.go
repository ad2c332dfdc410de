// Package router maps navigation hashes to pages and enforces the access
// policy: protected pages need a principal, admin pages need an admin.
package router

import "strings"

type Page int

const (
	PageHome Page = iota
	PageRegister
	PageVerify
	PageLogin
	PageProfile
	PageEmployees
	PageDepartments
	PageAccounts
	PageRequests
)

// Pages lists every page in menu order.
var Pages = []Page{
	PageHome, PageRegister, PageVerify, PageLogin, PageProfile,
	PageEmployees, PageDepartments, PageAccounts, PageRequests,
}

type Access int

const (
	AccessPublic Access = iota
	AccessProtected
	AccessAdmin
)

func (p Page) Hash() string {
	switch p {
	case PageHome:
		return "#/"
	case PageRegister:
		return "#/register"
	case PageVerify:
		return "#/verify-email"
	case PageLogin:
		return "#/login"
	case PageProfile:
		return "#/profile"
	case PageEmployees:
		return "#/employees"
	case PageDepartments:
		return "#/departments"
	case PageAccounts:
		return "#/accounts"
	case PageRequests:
		return "#/requests"
	default:
		return ""
	}
}

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageRegister:
		return "register"
	case PageVerify:
		return "verify"
	case PageLogin:
		return "login"
	case PageProfile:
		return "profile"
	case PageEmployees:
		return "employees"
	case PageDepartments:
		return "departments"
	case PageAccounts:
		return "accounts"
	case PageRequests:
		return "requests"
	default:
		return "unknown"
	}
}

// Access reports who may enter p. Home and login are public, which is what
// makes every redirect chain end.
func (p Page) Access() Access {
	switch p {
	case PageHome, PageRegister, PageVerify, PageLogin:
		return AccessPublic
	case PageProfile, PageRequests:
		return AccessProtected
	case PageEmployees, PageDepartments, PageAccounts:
		return AccessAdmin
	default:
		return AccessAdmin
	}
}

// ParseHash maps a navigation hash to its page. The leading "#" is
// optional and surrounding blanks are ignored.
func ParseHash(hash string) (Page, bool) {
	h := strings.TrimSpace(hash)
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	for _, p := range Pages {
		if p.Hash() == h {
			return p, true
		}
	}
	return 0, false
}

// ParsePage accepts a page name ("profile") or a hash ("#/profile").
func ParsePage(s string) (Page, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Pages {
		if p.String() == name {
			return p, true
		}
	}
	return ParseHash(s)
}
