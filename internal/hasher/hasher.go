package hasher

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used unless overridden.
const DefaultCost = bcrypt.DefaultCost

// Hasher hashes and verifies user passwords with bcrypt.
// The produced hash string embeds the algorithm, cost and a random
// per-password salt, so two hashes of the same password differ.
type Hasher struct {
	cost int
}

// New creates a Hasher. A cost below bcrypt.MinCost falls back to bcrypt.DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted hash of the plaintext password.
func (h *Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches the stored hash.
// It returns false for a malformed hash instead of an error: from the
// caller's point of view a record it cannot check is a failed check.
func (h *Hasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
