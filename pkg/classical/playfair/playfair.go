package playfair

import (
	"fmt"

	"github.com/sergeii/cryptotools/pkg/classical/cipher"
)

type Cipher struct {
	table Table
}

var _ cipher.Cipher = (*Cipher)(nil)

func New(keyword string) (*Cipher, error) {
	table, err := NewTable(keyword)
	if err != nil {
		return nil, err
	}
	return &Cipher{table: table}, nil
}

func (c *Cipher) Table() Table {
	return c.table
}

func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if !cipher.IsLowerLetters(plaintext) {
		return "", fmt.Errorf("%w: must be lowercase letters only", cipher.ErrInvalidPlaintext)
	}
	formatted, err := Format(plaintext)
	if err != nil {
		return "", err
	}
	if formatted == "" {
		return "", fmt.Errorf("%w: must contain letters other than q", cipher.ErrInvalidPlaintext)
	}
	return c.table.EncryptDigraphs(formatted)
}

func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	if !cipher.IsUpperLetters(ciphertext) {
		return "", fmt.Errorf("%w: must be uppercase letters only", cipher.ErrInvalidCiphertext)
	}
	return c.table.DecryptDigraphs(ciphertext)
}
