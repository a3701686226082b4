package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// PasswordServiceImpl hashes account passwords with bcrypt. Registration and
// login both go through here, so the work factor lives in one place.
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a password service at the default bcrypt cost.
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{cost: bcrypt.DefaultCost}
}

// NewPasswordServiceWithCost sets an explicit work factor. Tests use
// bcrypt.MinCost to keep hashing fast; an out-of-range cost falls back to
// the default.
func NewPasswordServiceWithCost(cost int) domain.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordServiceImpl{cost: cost}
}

// Hash returns the bcrypt hash of a plaintext password.
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches the stored hash. A malformed hash
// reads as a failed login rather than an error, so a corrupted account row
// cannot be distinguished from a wrong password by the caller.
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
