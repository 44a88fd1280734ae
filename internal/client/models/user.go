package models

import "strings"

// RegisteredUser is an entry of the auth directory. The password is kept in
// plaintext.
type RegisteredUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NormalizeEmail trims and lowercases an address, the form used as the
// directory key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
