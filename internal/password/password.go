package password

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the work factor the original deployment used for its
// stored hashes.
const DefaultCost = 10

// Hasher wraps bcrypt hashing and verification of user passwords.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: DefaultCost}
}

// Hash generates a salted bcrypt hash of the given plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored hash. An empty or
// malformed hash verifies as false rather than erroring: accounts created via
// federated signup have no stored hash, and password login for them must look
// exactly like a wrong password.
func (h *Hasher) Verify(plaintext, hashed string) bool {
	if hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
