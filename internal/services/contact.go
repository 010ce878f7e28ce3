package services

import (
	"net/mail"
	"strings"
)

// NormEmail lowercases and trims an address and reports whether it parses.
// Member emails are required, so empty is not ok here.
func NormEmail(s string) (string, bool) {
	e := strings.TrimSpace(strings.ToLower(s))
	if e == "" {
		return "", false
	}
	_, err := mail.ParseAddress(e)
	return e, err == nil
}
