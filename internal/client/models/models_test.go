package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"", RoleUser, true},
		{"user", RoleUser, true},
		{" Admin ", RoleAdmin, true},
		{"root", "", false},
		{"unauthenticated", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRole(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Admin", RoleAdmin.Label())
	assert.Equal(t, "User", RoleUser.Label())
	assert.Equal(t, "Guest", RoleUnauthenticated.Label())
}

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, StatusPending, Status("").Display())
	assert.Equal(t, StatusRejected, StatusRejected.Display())
}

func TestAccountFullName(t *testing.T) {
	a := Account{FirstName: "Alice", LastName: "Smith", Role: RoleAdmin}
	assert.Equal(t, "Alice Smith", a.FullName())
	assert.True(t, a.IsAdmin())
}

func TestStateClone_IsDeep(t *testing.T) {
	src := State{
		Accounts: []Account{{Email: "a@x.com"}},
		Requests: []Request{{Key: "r1", Items: []RequestItem{{Name: "Laptop", Qty: 1}}}},
	}

	cp := src.Clone()
	cp.Accounts[0].Email = "changed"
	cp.Requests[0].Items[0].Name = "changed"

	assert.Equal(t, "a@x.com", src.Accounts[0].Email)
	assert.Equal(t, "Laptop", src.Requests[0].Items[0].Name)
	assert.NotNil(t, cp.Departments)
	assert.NotNil(t, cp.Employees)
}

func TestStateJSON_FieldNames(t *testing.T) {
	st := State{
		Accounts: []Account{{Key: "k", FirstName: "A", LastName: "B", Email: "a@x.com", Password: "secret1", Role: RoleUser}},
		Requests: []Request{{
			EmployeeEmail: "a@x.com", Type: "Equipment",
			Items:  []RequestItem{{Name: "Laptop", Qty: 2}},
			Status: StatusPending,
			Date:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		}},
	}.Clone()

	b, err := json.Marshal(st)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	for _, c := range Collections {
		assert.Contains(t, raw, c)
	}
	assert.JSONEq(t, `[]`, mustJSON(t, raw["employees"]))

	acct := raw["accounts"].([]any)[0].(map[string]any)
	assert.Equal(t, "A", acct["firstName"])
	assert.Equal(t, false, acct["verified"])

	req := raw["requests"].([]any)[0].(map[string]any)
	assert.Equal(t, "a@x.com", req["employeeEmail"])
	assert.Equal(t, "2026-03-01T10:00:00Z", req["date"])
}

func TestRequest_DecodesLegacyDate(t *testing.T) {
	var r Request
	require.NoError(t, json.Unmarshal([]byte(`{"employeeEmail":"a@x.com","type":"Leave","items":[{"name":"Day off","qty":1}],"status":"Pending","date":"2025-11-04T08:15:30.123Z"}`), &r))
	assert.Equal(t, 2025, r.Date.Year())
	assert.Equal(t, []RequestItem{{Name: "Day off", Qty: 1}}, r.Items)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
