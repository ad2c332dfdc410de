package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPages_RoundTrip(t *testing.T) {
	for _, p := range Pages {
		got, ok := ParseHash(p.Hash())
		assert.True(t, ok, p.String())
		assert.Equal(t, p, got)

		byName, ok := ParsePage(p.String())
		assert.True(t, ok)
		assert.Equal(t, p, byName)
	}
}

func TestParseHash(t *testing.T) {
	p, ok := ParseHash(" /profile ")
	assert.True(t, ok)
	assert.Equal(t, PageProfile, p)

	_, ok = ParseHash("")
	assert.False(t, ok)
	_, ok = ParseHash("#/Profile")
	assert.False(t, ok)
}

func TestParsePage(t *testing.T) {
	p, ok := ParsePage("Departments")
	assert.True(t, ok)
	assert.Equal(t, PageDepartments, p)

	p, ok = ParsePage("#/verify-email")
	assert.True(t, ok)
	assert.Equal(t, PageVerify, p)

	_, ok = ParsePage("settings")
	assert.False(t, ok)
}

func TestHomeAndLoginArePublic(t *testing.T) {
	assert.Equal(t, AccessPublic, PageHome.Access())
	assert.Equal(t, AccessPublic, PageLogin.Access())
	assert.Equal(t, AccessProtected, PageProfile.Access())
	assert.Equal(t, AccessAdmin, PageAccounts.Access())
	assert.Equal(t, "unknown", Page(99).String())
	assert.Empty(t, Page(99).Hash())
}
