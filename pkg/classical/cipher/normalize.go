package cipher

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize reduces arbitrary text to the lowercase a-z alphabet.
// Accented letters are folded to their base letter, everything else is dropped.
// The result may be empty.
func Normalize(text string) (string, error) {
	fold := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		cases.Lower(language.Und),
		norm.NFC,
	)
	folded, _, err := transform.String(fold, text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPlaintext, err)
	}
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, folded), nil
}
