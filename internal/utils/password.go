package utils

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor for stored passwords.
const PasswordHashCost = bcrypt.DefaultCost

// ErrPasswordTooLong is returned for passwords bcrypt would silently
// truncate.
var ErrPasswordTooLong = errors.New("password must not exceed 72 bytes")

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// dummyPasswordHash is compared against when no stored hash exists, so a
// failed lookup costs as much as a wrong password.
var dummyPasswordHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("dummy-password"), PasswordHashCost)
	if err != nil {
		panic(fmt.Sprintf("error hashing dummy password: %v", err))
	}
	return hash
})

// CheckPasswordAgainstDummy runs a full bcrypt comparison against a fixed
// hash. It always returns false.
func CheckPasswordAgainstDummy(password string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(password))
	return false
}

// NormalizeEmail lowercases an e-mail address so that lookups and the
// unique constraint ignore case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
