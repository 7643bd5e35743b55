package auth

import (
	"testing"

	"diary/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4}, // low cost keeps the test fast
	})

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	})

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidatePasswordStrength_DefaultPolicy(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.Error(t, hasher.ValidatePasswordStrength("short"))
	assert.NoError(t, hasher.ValidatePasswordStrength("longenough"))
}

func TestBcryptHasher_ValidatePasswordStrength_ConfiguredPolicy(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        64,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	})

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "meets all requirements", password: "Password123!", valid: true},
		{name: "too short", password: "Pw1!", valid: false},
		{name: "missing uppercase", password: "password123!", valid: false},
		{name: "missing lowercase", password: "PASSWORD123!", valid: false},
		{name: "missing number", password: "Password!!!!", valid: false},
		{name: "missing special", password: "Password1234", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
