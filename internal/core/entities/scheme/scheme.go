package scheme

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
)

type Scheme int

const (
	Unknown Scheme = iota
	Playfair
	Shift
)

var ErrUnknownScheme = errors.New("unknown cipher scheme")

func (s Scheme) String() string {
	switch s {
	case Playfair:
		return "Playfair"
	case Shift:
		return "Shift"
	case Unknown:
		return "Unknown"
	}
	return fmt.Sprintf("%d", s)
}

// Slug is the url-friendly name of the scheme, e.g. "playfair".
func (s Scheme) Slug() string {
	return slug.Make(s.String())
}

func (s Scheme) IsKnown() bool {
	switch s { // nolint: exhaustive
	case Playfair, Shift:
		return true
	default:
		return false
	}
}

func All() []Scheme {
	return []Scheme{Playfair, Shift}
}

func FromSlug(value string) (Scheme, error) {
	value = slug.Make(value)
	for _, s := range All() {
		if s.Slug() == value {
			return s, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownScheme, value)
}
