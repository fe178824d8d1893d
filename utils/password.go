package utils

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/matthewhartstonge/argon2"
)

// PasswordScheme turns a password into the value stored in a credential
// record and checks login input against it.
type PasswordScheme interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// PlainScheme stores passwords as given. It is the demo default.
type PlainScheme struct{}

func (PlainScheme) Hash(password string) (string, error) {
	return password, nil
}

func (PlainScheme) Verify(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

type Argon2Scheme struct {
	config argon2.Config
}

func NewArgon2Scheme() *Argon2Scheme {
	return &Argon2Scheme{config: argon2.DefaultConfig()}
}

func (s *Argon2Scheme) Hash(password string) (string, error) {
	encoded, err := s.config.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (s *Argon2Scheme) Verify(stored, password string) bool {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(stored))
	return err == nil && ok
}

func NewPasswordScheme(name string) (PasswordScheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain":
		return PlainScheme{}, nil
	case "argon2":
		return NewArgon2Scheme(), nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}
