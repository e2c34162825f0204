package repositories

import (
	"errors"
)

var (
	ErrFactorizationNotFound = errors.New("the requested factorization was not found")
)
