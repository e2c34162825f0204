package playfair

import (
	"fmt"
	"strings"

	"github.com/sergeii/cryptotools/pkg/classical/cipher"
)

type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Table is the 5x5 key square. It is immutable once built.
type Table struct {
	grid  [Size][Size]byte
	index [len(Alphabet)]Position
}

// NewTable derives the key square from a keyword.
// Distinct keyword letters come first in order of their first occurrence,
// followed by the rest of the alphabet. Letters fill the square column by column,
// so that the k-th letter lands on row k mod 5 and column k div 5.
func NewTable(keyword string) (Table, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return Table{}, fmt.Errorf("%w: must not be empty", cipher.ErrInvalidKey)
	}
	if !cipher.IsLowerLetters(keyword) {
		return Table{}, fmt.Errorf("%w: must be letters only", cipher.ErrInvalidKey)
	}

	var seen [len(Alphabet)]bool
	letters := make([]byte, 0, len(Alphabet))
	for _, src := range []string{keyword, Alphabet} {
		for i := range len(src) {
			r := rank(src[i])
			if r < 0 || seen[r] {
				continue
			}
			seen[r] = true
			letters = append(letters, src[i])
		}
	}

	var t Table
	for k, letter := range letters {
		pos := Position{Row: k % Size, Col: k / Size}
		t.grid[pos.Row][pos.Col] = letter
		t.index[rank(letter)] = pos
	}

	return t, nil
}

func MustNewTable(keyword string) Table {
	t, err := NewTable(keyword)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Table) At(pos Position) byte {
	return t.grid[pos.Row][pos.Col]
}

// PositionOf locates a letter in the table. Case is ignored.
func (t Table) PositionOf(letter byte) (Position, bool) {
	r := rank(toLower(letter))
	if r < 0 {
		return Position{}, false
	}
	return t.index[r], true
}

// Letters returns the table contents in fill order.
func (t Table) Letters() string {
	var b strings.Builder
	b.Grow(len(Alphabet))
	for col := range Size {
		for row := range Size {
			b.WriteByte(t.grid[row][col])
		}
	}
	return b.String()
}

func (t Table) Rows() [Size]string {
	var rows [Size]string
	for row := range Size {
		rows[row] = string(t.grid[row][:])
	}
	return rows
}

func (t Table) String() string {
	var b strings.Builder
	for row := range Size {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := range Size {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(toUpper(t.grid[row][col]))
		}
	}
	return b.String()
}

// EncryptDigraphs substitutes every pair of an already formatted plaintext.
// Letters sharing a row move one column right, letters sharing a column
// move one row down, otherwise each letter takes the column of the other.
func (t Table) EncryptDigraphs(formatted string) (string, error) {
	if len(formatted)%2 != 0 {
		return "", fmt.Errorf("%w: must be of even length", cipher.ErrInvalidPlaintext)
	}
	out := make([]byte, len(formatted))
	for i := 0; i < len(formatted); i += 2 {
		a, okA := t.lookup(formatted[i], 'a')
		b, okB := t.lookup(formatted[i+1], 'a')
		if !okA || !okB {
			return "", fmt.Errorf("%w: must be lowercase letters other than q", cipher.ErrInvalidPlaintext)
		}
		outA, outB := t.substitute(a, b, 1)
		out[i], out[i+1] = toUpper(outA), toUpper(outB)
	}
	return string(out), nil
}

// DecryptDigraphs reverses EncryptDigraphs.
func (t Table) DecryptDigraphs(ciphertext string) (string, error) {
	if len(ciphertext)%2 != 0 {
		return "", fmt.Errorf("%w: must be of even length", cipher.ErrInvalidCiphertext)
	}
	out := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += 2 {
		a, okA := t.lookup(ciphertext[i], 'A')
		b, okB := t.lookup(ciphertext[i+1], 'A')
		if !okA || !okB {
			return "", fmt.Errorf("%w: must be uppercase letters other than Q", cipher.ErrInvalidCiphertext)
		}
		out[i], out[i+1] = t.substitute(a, b, -1)
	}
	return string(out), nil
}

// lookup accepts a letter only in the case given by base ('a' or 'A').
func (t Table) lookup(letter byte, base byte) (Position, bool) {
	if letter < base || letter > base+'z'-'a' {
		return Position{}, false
	}
	return t.PositionOf(letter)
}

func (t Table) substitute(a, b Position, shift int) (byte, byte) {
	switch {
	case a.Row == b.Row:
		return t.grid[a.Row][wrap(a.Col+shift)], t.grid[b.Row][wrap(b.Col+shift)]
	case a.Col == b.Col:
		return t.grid[wrap(a.Row+shift)][a.Col], t.grid[wrap(b.Row+shift)][b.Col]
	default:
		return t.grid[a.Row][b.Col], t.grid[b.Row][a.Col]
	}
}

func wrap(i int) int {
	return (i%Size + Size) % Size
}
