package store

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const minPasswordLen = 6

// sameFold compares under full Unicode case folding.
func sameFold(a, b string) bool {
	c := cases.Fold()
	return c.String(a) == c.String(b)
}

func tooShort(password string) bool {
	return utf8.RuneCountInString(password) < minPasswordLen
}

func trim(s string) string { return strings.TrimSpace(s) }
