// Package password wraps the bcrypt credential hashing scheme used by
// the directory source. Verification cost is dominated by the hash
// computation itself, which is the point: it keeps offline and
// timing-based guessing expensive.
package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost matches the cost factor used when directory source files
// are generated.
const DefaultCost = 10

// Hash returns the bcrypt hash of the given plaintext at DefaultCost.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. The
// plaintext must never be logged by callers.
func Verify(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
