package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/cybercafe/internal/common"
)

// passwordSpecials is the fixed set of special characters the registration
// policy accepts.
const passwordSpecials = "@$!%*?&"

const minPasswordLength = 8

// ValidatePassword checks the registration password policy: at least eight
// characters, with at least one lowercase letter, one uppercase letter, one
// digit, and one special character from passwordSpecials, drawing only from
// those four classes. Anything else returns common.ErrorWeakPassword.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return common.ErrorWeakPassword
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return common.ErrorWeakPassword
		}
	}

	if !lower || !upper || !digit || !special {
		return common.ErrorWeakPassword
	}
	return nil
}

// HashPassword hashes a plaintext password with the given bcrypt cost.
func HashPassword(password []byte, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, cost)
}
