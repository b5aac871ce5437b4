// Package bcrypt hashes and checks the administrator password.
package bcrypt

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHandler can hash and check passwords.
type PasswordHandler struct {
	cost int
}

// NewPasswordHandler creates a password handler that hashes with the cost.
// A cost of zero uses the default cost.
func NewPasswordHandler(cost int) (*PasswordHandler, error) {
	switch {
	case cost == 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost, cost > bcrypt.MaxCost:
		return nil, fmt.Errorf("creating password handler: cost must be between %v and %v, got %v", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}
	ph := PasswordHandler{
		cost: cost,
	}
	return &ph, nil
}

// Hash computes the password hash from the supplied password.
func (ph PasswordHandler) Hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), ph.cost)
}

// IsCorrect determines if the hashed password matches the supplied password.
func (PasswordHandler) IsCorrect(hashedPassword []byte, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(hashedPassword, []byte(password))
	switch {
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}
