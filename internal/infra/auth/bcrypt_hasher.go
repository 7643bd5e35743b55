// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"diary/config"
	"diary/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	var strength *config.PasswordStrengthConfig
	if cfg != nil {
		strength = cfg.PasswordStrength
	}

	return &bcryptHasher{
		cost:     cost,
		strength: strength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks a plaintext password against the configured
// strength policy. With no policy configured, only a minimal length check applies.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if h.strength == nil {
		if len(password) < 8 {
			return errors.New("password must be at least 8 characters long")
		}

		return nil
	}

	if h.strength.MinLength > 0 && len(password) < h.strength.MinLength {
		return errors.Errorf("password must be at least %d characters long", h.strength.MinLength)
	}
	if h.strength.MaxLength > 0 && len(password) > h.strength.MaxLength {
		return errors.Errorf("password must be at most %d characters long", h.strength.MaxLength)
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	var missing []string
	if h.strength.RequireUppercase && !hasUpper {
		missing = append(missing, "an uppercase letter")
	}
	if h.strength.RequireLowercase && !hasLower {
		missing = append(missing, "a lowercase letter")
	}
	if h.strength.RequireNumbers && !hasNumber {
		missing = append(missing, "a number")
	}
	if h.strength.RequireSpecial && !hasSpecial {
		missing = append(missing, "a special character")
	}

	if len(missing) > 0 {
		return errors.Errorf("password must contain %s", strings.Join(missing, ", "))
	}

	return nil
}
