package ciphers

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/sergeii/cryptotools/internal/core/entities/scheme"
	"github.com/sergeii/cryptotools/pkg/classical/cipher"
	"github.com/sergeii/cryptotools/pkg/classical/playfair"
	"github.com/sergeii/cryptotools/pkg/classical/shift"
)

var ErrUnsupportedScheme = errors.New("unsupported cipher scheme")

// Factory builds a cipher from a key in its textual form.
type Factory func(key string) (cipher.Cipher, error)

// Preparer turns free-form text into plaintext accepted by the scheme's Encrypt.
type Preparer func(text string) (string, error)

type Variant struct {
	New     Factory
	Prepare Preparer
}

type Registry struct {
	mutex    sync.RWMutex
	variants map[scheme.Scheme]Variant
}

func NewRegistry() *Registry {
	r := &Registry{
		variants: make(map[scheme.Scheme]Variant),
	}
	r.Register(scheme.Playfair, Variant{New: newPlayfair, Prepare: preparePlayfair})
	r.Register(scheme.Shift, Variant{New: newShift, Prepare: prepareShift})
	return r
}

func (r *Registry) Register(s scheme.Scheme, v Variant) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.variants[s] = v
}

func (r *Registry) IsRegistered(s scheme.Scheme) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	_, ok := r.variants[s]
	return ok
}

// Schemes lists the registered schemes in ascending order.
func (r *Registry) Schemes() []scheme.Scheme {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	schemes := make([]scheme.Scheme, 0, len(r.variants))
	for s := range r.variants {
		schemes = append(schemes, s)
	}
	slices.Sort(schemes)
	return schemes
}

func (r *Registry) New(s scheme.Scheme, key string) (cipher.Cipher, error) {
	v, err := r.variant(s)
	if err != nil {
		return nil, err
	}
	return v.New(key)
}

func (r *Registry) Prepare(s scheme.Scheme, text string) (string, error) {
	v, err := r.variant(s)
	if err != nil {
		return "", err
	}
	return v.Prepare(text)
}

func (r *Registry) variant(s scheme.Scheme) (Variant, error) {
	r.mutex.RLock()
	v, ok := r.variants[s]
	r.mutex.RUnlock()
	if !ok {
		return Variant{}, fmt.Errorf("%w: %s", ErrUnsupportedScheme, s)
	}
	return v, nil
}

func newPlayfair(key string) (cipher.Cipher, error) {
	return playfair.New(key)
}

func newShift(key string) (cipher.Cipher, error) {
	k, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return nil, fmt.Errorf("%w: must be an integer", cipher.ErrInvalidKey)
	}
	return shift.New(k)
}

func preparePlayfair(text string) (string, error) {
	normalized, err := prepareShift(text)
	if err != nil {
		return "", err
	}
	formatted, err := playfair.Format(normalized)
	if err != nil {
		return "", err
	}
	if formatted == "" {
		return "", fmt.Errorf("%w: must contain letters other than q", cipher.ErrInvalidPlaintext)
	}
	return formatted, nil
}

func prepareShift(text string) (string, error) {
	normalized, err := cipher.Normalize(text)
	if err != nil {
		return "", err
	}
	if normalized == "" {
		return "", fmt.Errorf("%w: must contain letters", cipher.ErrInvalidPlaintext)
	}
	return normalized, nil
}
