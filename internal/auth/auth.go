package auth

import (
	"localjobs-engine/internal/domain"
	"localjobs-engine/internal/repo"
)

// Authenticate scans the users collection for the first record whose email
// matches case-insensitively and whose password matches exactly. The
// case-insensitive-email / case-sensitive-password asymmetry is deliberate
// and covered by tests; do not "fix" it.
func Authenticate(users repo.Users, email, password string) (domain.User, bool) {
	for _, u := range users.LoadAll() {
		if domain.SameEmail(u.Email, email) && u.Password == password {
			return u, true
		}
	}
	return domain.User{}, false
}
