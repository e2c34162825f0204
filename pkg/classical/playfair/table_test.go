package playfair_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/cryptotools/pkg/classical/cipher"
	"github.com/sergeii/cryptotools/pkg/classical/playfair"
)

func TestNewTable_FillsColumnMajor(t *testing.T) {
	table, err := playfair.NewTable("nancy")
	require.NoError(t, err)

	assert.Equal(t, byte('n'), table.At(playfair.Position{Row: 0, Col: 0}))
	assert.Equal(t, byte('a'), table.At(playfair.Position{Row: 1, Col: 0}))
	assert.Equal(t, byte('c'), table.At(playfair.Position{Row: 2, Col: 0}))
	assert.Equal(t, byte('y'), table.At(playfair.Position{Row: 3, Col: 0}))
	assert.Equal(t, byte('b'), table.At(playfair.Position{Row: 4, Col: 0}))
	assert.Equal(t, byte('d'), table.At(playfair.Position{Row: 0, Col: 1}))
	assert.Equal(t, byte('z'), table.At(playfair.Position{Row: 4, Col: 4}))

	assert.Equal(t, "nacybdefghijklmoprstuvwxz", table.Letters())
	assert.Equal(t, [playfair.Size]string{
		"ndiou",
		"aejpv",
		"cfkrw",
		"yglsx",
		"bhmtz",
	}, table.Rows())
	assert.Equal(t, "N D I O U\nA E J P V\nC F K R W\nY G L S X\nB H M T Z", table.String())
}

func TestNewTable_ContainsEveryLetterOnce(t *testing.T) {
	keywords := []string{"a", "nancy", "playfairexample", "zyxwvutsrponmlkjihgfedcba", "queen", "qqq"}
	for _, keyword := range keywords {
		t.Run(keyword, func(t *testing.T) {
			table := playfair.MustNewTable(keyword)
			letters := table.Letters()
			require.Len(t, letters, len(playfair.Alphabet))
			for i := range len(playfair.Alphabet) {
				letter := playfair.Alphabet[i]
				assert.Equal(t, 1, strings.Count(letters, string(letter)))
				pos, ok := table.PositionOf(letter)
				require.True(t, ok)
				assert.Equal(t, letter, table.At(pos))
			}
			assert.NotContains(t, letters, "q")
		})
	}
}

func TestNewTable_KeywordWithExcludedLetter(t *testing.T) {
	table := playfair.MustNewTable("queen")

	assert.Equal(t, "uenabcdfghijklmoprstvwxyz", table.Letters())
	_, ok := table.PositionOf('q')
	assert.False(t, ok)
	_, ok = table.PositionOf('Q')
	assert.False(t, ok)
}

func TestNewTable_SameKeyYieldsSameTable(t *testing.T) {
	assert.Equal(t, playfair.MustNewTable("nancy"), playfair.MustNewTable("nancy"))
	assert.Equal(t, playfair.MustNewTable("nancy"), playfair.MustNewTable("  NanCy "))
	assert.Equal(t, playfair.MustNewTable("nancy"), playfair.MustNewTable("nnaannccyy"))
	assert.NotEqual(t, playfair.MustNewTable("nancy"), playfair.MustNewTable("ycnan"))
}

func TestNewTable_PlainAlphabet(t *testing.T) {
	table := playfair.MustNewTable("a")
	assert.Equal(t, playfair.Alphabet, table.Letters())
	assert.Equal(t, playfair.MustNewTable("q"), table)
}

func TestNewTable_InvalidKeyword(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		errMsg  string
	}{
		{"empty", "", "invalid key: must not be empty"},
		{"whitespace only", "   ", "invalid key: must not be empty"},
		{"digits", "abc1", "invalid key: must be letters only"},
		{"inner space", "nan cy", "invalid key: must be letters only"},
		{"non ascii", "naïve", "invalid key: must be letters only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := playfair.NewTable(tt.keyword)
			assert.ErrorIs(t, err, cipher.ErrInvalidKey)
			assert.EqualError(t, err, tt.errMsg)
		})
	}
}

func TestTable_PositionOf(t *testing.T) {
	table := playfair.MustNewTable("nancy")

	pos, ok := table.PositionOf('l')
	assert.True(t, ok)
	assert.Equal(t, playfair.Position{Row: 3, Col: 2}, pos)
	assert.Equal(t, "(3,2)", pos.String())

	pos, ok = table.PositionOf('L')
	assert.True(t, ok)
	assert.Equal(t, playfair.Position{Row: 3, Col: 2}, pos)

	_, ok = table.PositionOf('1')
	assert.False(t, ok)
}

func TestTable_EncryptDigraphs(t *testing.T) {
	table := playfair.MustNewTable("nancy")
	tests := []struct {
		name      string
		formatted string
		want      string
	}{
		{"same column moves down", "il", "JM"},
		{"same row moves right", "ou", "UN"},
		{"rectangle swaps columns", "ov", "UP"},
		{"rectangle reversed", "ye", "GA"},
		{"column wraps around", "bn", "NA"},
		{"row wraps around", "uo", "NU"},
		{"several digraphs", "iloveyou", "JMUPAGUN"},
		{"split doubled letters", "helxlo", "DFSYSI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.EncryptDigraphs(tt.formatted)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := table.DecryptDigraphs(got)
			require.NoError(t, err)
			assert.Equal(t, tt.formatted, back)
		})
	}
}

func TestTable_RectangleIsSelfInverse(t *testing.T) {
	table := playfair.MustNewTable("playfair")
	for i := range len(playfair.Alphabet) {
		for j := range len(playfair.Alphabet) {
			a, b := playfair.Alphabet[i], playfair.Alphabet[j]
			posA, _ := table.PositionOf(a)
			posB, _ := table.PositionOf(b)
			if posA.Row == posB.Row || posA.Col == posB.Col {
				continue
			}
			pair := string([]byte{a, b})
			once, err := table.EncryptDigraphs(pair)
			require.NoError(t, err)
			twice, err := table.EncryptDigraphs(strings.ToLower(once))
			require.NoError(t, err)
			assert.Equal(t, strings.ToUpper(pair), twice)

			decrypted, err := table.DecryptDigraphs(once)
			require.NoError(t, err)
			assert.Equal(t, pair, decrypted)
		}
	}
}

func TestTable_EncryptDigraphs_Invalid(t *testing.T) {
	table := playfair.MustNewTable("nancy")
	tests := []struct {
		name      string
		formatted string
	}{
		{"odd length", "abc"},
		{"excluded letter", "qa"},
		{"uppercase", "AB"},
		{"non letter", "a1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.EncryptDigraphs(tt.formatted)
			assert.ErrorIs(t, err, cipher.ErrInvalidPlaintext)
		})
	}
}

func TestTable_DecryptDigraphs_Invalid(t *testing.T) {
	table := playfair.MustNewTable("nancy")
	tests := []struct {
		name       string
		ciphertext string
	}{
		{"odd length", "JMU"},
		{"excluded letter", "QA"},
		{"lowercase", "jm"},
		{"non letter", "J!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.DecryptDigraphs(tt.ciphertext)
			assert.ErrorIs(t, err, cipher.ErrInvalidCiphertext)
		})
	}
}
