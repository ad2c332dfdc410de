package composer

import (
	"strconv"
	"strings"
)

// ParseQty reads the leading integer of s, so "2", " 3 pcs" and "4.5" all
// parse. Anything without one, or below one, is 1.
func ParseQty(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 1
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 1 {
		return 1
	}
	return n
}
