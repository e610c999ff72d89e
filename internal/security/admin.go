package security

import "crypto/subtle"

// CheckAdminSecret compares the shared admin password in constant time so the
// comparison leaks nothing about how much of the guess matched.
func CheckAdminSecret(secret, candidate string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(candidate)) == 1
}
