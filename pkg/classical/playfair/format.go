package playfair

import (
	"fmt"
	"strings"

	"github.com/sergeii/cryptotools/pkg/classical/cipher"
)

// Format turns plaintext into a digraph sequence suitable for EncryptDigraphs:
// q is dropped, a pair of equal letters is split by the filler
// and the result is padded with the filler to an even length.
// Plaintext consisting of q only formats to an empty string.
// A trailing filler is itself padded, leaving an xx pair ("abx" formats to "abxx").
func Format(plaintext string) (string, error) {
	plaintext = strings.ToLower(plaintext)
	if !cipher.IsLowerLetters(plaintext) {
		return "", fmt.Errorf("%w: must be letters only", cipher.ErrInvalidPlaintext)
	}

	letters := strings.ReplaceAll(plaintext, string(Excluded), "")

	var b strings.Builder
	b.Grow(len(letters) + len(letters)/2 + 1)
	for i := 0; i < len(letters); {
		first := letters[i]
		if i+1 == len(letters) {
			b.WriteByte(first)
			break
		}
		second := letters[i+1]
		if first == second {
			// the second letter starts the next pair
			b.WriteByte(first)
			b.WriteByte(Filler)
			i++
			continue
		}
		b.WriteByte(first)
		b.WriteByte(second)
		i += 2
	}
	if b.Len()%2 != 0 {
		b.WriteByte(Filler)
	}

	return b.String(), nil
}
