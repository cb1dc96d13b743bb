package domain

import "strings"

// User is an account record. Email is the identity key and is compared
// case-insensitively everywhere; the password compare stays case-sensitive.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// SameEmail reports whether two emails name the same account.
func SameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
