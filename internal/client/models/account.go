package models

import "strings"

// Role is an account's authorization level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"

	// RoleUnauthenticated is reported when no principal is active. It is
	// never stored on an account.
	RoleUnauthenticated Role = "unauthenticated"
)

// ParseRole accepts "user" or "admin" in any case; blank means user.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Label is the capitalised role shown on the profile and account list.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleUser:
		return "User"
	default:
		return "Guest"
	}
}

type Account struct {
	Key       string `json:"key"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
	Verified  bool   `json:"verified"`
}

func (a Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

func (a Account) IsAdmin() bool { return a.Role == RoleAdmin }

// AccountInput carries the editable account fields. A blank Password on
// update keeps the stored one.
type AccountInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      Role
	Verified  bool
}

// RegisterInput is what the self-service registration form collects.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}
