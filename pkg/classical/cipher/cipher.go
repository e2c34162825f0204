package cipher

import (
	"errors"
)

var (
	ErrInvalidKey        = errors.New("invalid key")
	ErrInvalidPlaintext  = errors.New("invalid plaintext")
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
)

// Cipher is a reversible text transformation bound to a key.
// Plaintext is lowercase a-z, ciphertext is uppercase A-Z.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

func IsLowerLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func IsUpperLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
