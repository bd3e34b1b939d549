// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"tablenow/config"
	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/service"
)

// Default strength requirements, overridable through config.
const (
	defaultMinPasswordLength = 8
	defaultMaxPasswordLength = 128
)

// Common credential-stuffing fodder. Matched case-insensitively as substrings.
var forbiddenWords = []string{"password", "admin", "123456", "qwerty"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost             int
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost)
}

// NewBcryptHasherWithCost creates a hasher with an explicit bcrypt cost.
// Lower costs are useful in tests.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{
		cost:             cost,
		minLength:        defaultMinPasswordLength,
		maxLength:        defaultMaxPasswordLength,
		requireUppercase: true,
		requireLowercase: true,
		requireNumbers:   true,
		requireSpecial:   true,
	}
}

// NewBcryptHasherFromConfig builds a hasher honoring the configured cost and
// strength requirements, falling back to the defaults where unset.
func NewBcryptHasherFromConfig(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{
		cost:             bcrypt.DefaultCost,
		minLength:        defaultMinPasswordLength,
		maxLength:        defaultMaxPasswordLength,
		requireUppercase: true,
		requireLowercase: true,
		requireNumbers:   true,
		requireSpecial:   true,
	}
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}
	if strength := cfg.PasswordStrength; strength != nil {
		if strength.MinLength > 0 {
			hasher.minLength = strength.MinLength
		}
		if strength.MaxLength > 0 {
			hasher.maxLength = strength.MaxLength
		}
		hasher.requireUppercase = strength.RequireUppercase
		hasher.requireLowercase = strength.RequireLowercase
		hasher.requireNumbers = strength.RequireNumbers
		hasher.requireSpecial = strength.RequireSpecial
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// The plaintext must meet the strength requirements first.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength reports whether the plaintext meets the configured
// strength requirements.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.minLength {
		return domainerrors.ErrPasswordTooWeak.WrapMessage("password must be at least 8 characters long")
	}
	if h.requireLowercase && !h.hasLowercase(password) {
		return domainerrors.ErrPasswordTooWeak.WrapMessage("password must contain at least one lowercase letter")
	}
	if h.requireUppercase && !h.hasUppercase(password) {
		return domainerrors.ErrPasswordTooWeak.WrapMessage("password must contain at least one uppercase letter")
	}
	if h.requireNumbers && !h.hasNumbers(password) {
		return domainerrors.ErrPasswordTooWeak.WrapMessage("password must contain at least one number")
	}
	if h.requireSpecial && !h.hasSpecialChars(password) {
		return domainerrors.ErrPasswordTooWeak.WrapMessage("password must contain at least one special character")
	}
	if h.containsForbiddenWords(password, forbiddenWords) {
		return domainerrors.ErrPasswordForbiddenWords.WrapMessage("password contains forbidden words")
	}
	if len(password) > h.maxLength {
		return domainerrors.ErrPasswordTooWeak.WrapMessage("password is too long")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLower)
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func (h *bcryptHasher) containsForbiddenWords(password string, words []string) bool {
	lowered := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lowered, word) {
			return true
		}
	}

	return false
}
