package playfair

const (
	// Alphabet holds the 25 letters placed in the key table, in ascending order.
	Alphabet = "abcdefghijklmnoprstuvwxyz"
	// Excluded is the letter that never enters the table.
	Excluded byte = 'q'
	// Filler separates doubled letters and pads odd-length text.
	Filler byte = 'x'

	Size = 5
)

// rank returns the position of a lowercase letter within Alphabet,
// or -1 for anything that cannot be placed in the table.
func rank(letter byte) int {
	switch {
	case letter < 'a' || letter > 'z' || letter == Excluded:
		return -1
	case letter < Excluded:
		return int(letter - 'a')
	default:
		return int(letter-'a') - 1
	}
}

func toLower(letter byte) byte {
	if letter >= 'A' && letter <= 'Z' {
		return letter + 'a' - 'A'
	}
	return letter
}

func toUpper(letter byte) byte {
	if letter >= 'a' && letter <= 'z' {
		return letter - ('a' - 'A')
	}
	return letter
}
