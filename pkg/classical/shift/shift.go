package shift

import (
	"fmt"

	"github.com/sergeii/cryptotools/pkg/classical/cipher"
)

const (
	MinKey = 0
	MaxKey = 25

	letters = 26
)

// Cipher rotates every letter of the alphabet by a fixed key.
type Cipher struct {
	key int
}

var _ cipher.Cipher = (*Cipher)(nil)

func New(key int) (*Cipher, error) {
	if key < MinKey || key > MaxKey {
		return nil, fmt.Errorf("%w: must be within [%d,%d]", cipher.ErrInvalidKey, MinKey, MaxKey)
	}
	return &Cipher{key: key}, nil
}

func (c *Cipher) Key() int {
	return c.key
}

func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if !cipher.IsLowerLetters(plaintext) {
		return "", fmt.Errorf("%w: must be lowercase letters only", cipher.ErrInvalidPlaintext)
	}
	return rotate(plaintext, 'a', 'A', c.key), nil
}

func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	if !cipher.IsUpperLetters(ciphertext) {
		return "", fmt.Errorf("%w: must be uppercase letters only", cipher.ErrInvalidCiphertext)
	}
	return rotate(ciphertext, 'A', 'a', letters-c.key), nil
}

func rotate(text string, from, to byte, by int) string {
	out := make([]byte, len(text))
	for i := range len(text) {
		out[i] = to + byte((int(text[i]-from)+by)%letters)
	}
	return string(out)
}
