package store

import (
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/google/uuid"
)

// seedNamespace scopes the name-based keys of seeded records, so reseeding
// always yields the same keys.
var seedNamespace = uuid.MustParse("6f1c2a4e-8d3b-4c7a-9e52-1b0d7f3a9c61")

func seedKey(kind, natural string) string {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+natural)).String()
}

// DefaultState is the data a fresh or corrupt store starts from: one
// verified admin and two departments.
func DefaultState() models.State {
	return models.State{
		Accounts: []models.Account{{
			Key:       seedKey("account", "admin@example.com"),
			FirstName: "Admin",
			LastName:  "User",
			Email:     "admin@example.com",
			Password:  "Password123!",
			Role:      models.RoleAdmin,
			Verified:  true,
		}},
		Departments: []models.Department{
			{Key: seedKey("department", "Engineering"), Name: "Engineering", Description: "Software team"},
			{Key: seedKey("department", "HR"), Name: "HR", Description: "Human Resources"},
		},
	}.Clone()
}

// assignMissingKeys gives every keyless record a key and reports whether
// it changed anything. Blobs written before records had keys need this.
func assignMissingKeys(st *models.State) bool {
	changed := false
	for i := range st.Accounts {
		if st.Accounts[i].Key == "" {
			st.Accounts[i].Key = uuid.NewString()
			changed = true
		}
	}
	for i := range st.Departments {
		if st.Departments[i].Key == "" {
			st.Departments[i].Key = uuid.NewString()
			changed = true
		}
	}
	for i := range st.Employees {
		if st.Employees[i].Key == "" {
			st.Employees[i].Key = uuid.NewString()
			changed = true
		}
	}
	for i := range st.Requests {
		if st.Requests[i].Key == "" {
			st.Requests[i].Key = uuid.NewString()
			changed = true
		}
	}
	return changed
}
