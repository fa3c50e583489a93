package security

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordChecker compares a submitted admin password with the configured secret.
type PasswordChecker interface {
	Check(password string) bool
}

type plainPassword struct {
	secret []byte
}

type hashedPassword struct {
	hash []byte
}

// NewPasswordChecker prefers the bcrypt hash when one is configured.
func NewPasswordChecker(plain, bcryptHash string) (PasswordChecker, error) {
	if bcryptHash != "" {
		if _, err := bcrypt.Cost([]byte(bcryptHash)); err != nil {
			return nil, errors.New("admin password hash is not a bcrypt hash")
		}
		return &hashedPassword{hash: []byte(bcryptHash)}, nil
	}
	if plain == "" {
		return nil, errors.New("admin password is empty")
	}
	return &plainPassword{secret: []byte(plain)}, nil
}

func (p *plainPassword) Check(password string) bool {
	return subtle.ConstantTimeCompare(p.secret, []byte(password)) == 1
}

func (p *hashedPassword) Check(password string) bool {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(password)) == nil
}

// HashPassword produces a bcrypt hash suitable for admin.password_hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
