package service

import "golang.org/x/crypto/bcrypt"

// Credentials hashes and verifies passwords with bcrypt. Plaintext is only
// ever handed to these two functions; it is never stored, logged or compared
// against a stored hash by equality.
type Credentials struct {
	cost int
}

// NewCredentials returns a Credentials using the given bcrypt cost, or
// bcrypt.DefaultCost when the value is out of range.
func NewCredentials(cost int) Credentials {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Credentials{cost: cost}
}

// Hash derives a salted one-way hash from the plaintext password.
func (c Credentials) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash.
func (c Credentials) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
