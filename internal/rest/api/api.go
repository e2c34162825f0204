package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sergeii/cryptotools/cmd/cryptotools/container"
	"github.com/sergeii/cryptotools/internal/ciphers"
	"github.com/sergeii/cryptotools/internal/core/entities/scheme"
	"github.com/sergeii/cryptotools/internal/core/usecases/computegcd"
	"github.com/sergeii/cryptotools/internal/core/usecases/computemodpow"
	"github.com/sergeii/cryptotools/internal/core/usecases/decrypttext"
	"github.com/sergeii/cryptotools/internal/core/usecases/encrypttext"
	"github.com/sergeii/cryptotools/internal/core/usecases/factorize"
	"github.com/sergeii/cryptotools/internal/core/usecases/gettable"
	"github.com/sergeii/cryptotools/internal/core/usecases/preparetext"
	"github.com/sergeii/cryptotools/internal/settings"
	"github.com/sergeii/cryptotools/pkg/classical/cipher"
	"github.com/sergeii/cryptotools/pkg/numtheory"
)

type API struct {
	settings  settings.Settings
	container container.Container
	registry  *ciphers.Registry
	logger    *zerolog.Logger
}

type Error struct {
	Error string `json:"error"`
}

func New(
	settings settings.Settings,
	logger *zerolog.Logger,
	container container.Container,
	registry *ciphers.Registry,
) *API {
	return &API{
		container: container,
		settings:  settings,
		registry:  registry,
		logger:    logger,
	}
}

var badRequestErrors = []error{ // nolint: gochecknoglobals
	cipher.ErrInvalidKey,
	cipher.ErrInvalidPlaintext,
	cipher.ErrInvalidCiphertext,
	numtheory.ErrInvalidModulus,
	numtheory.ErrNegativeExponent,
	numtheory.ErrNonPositive,
	encrypttext.ErrInvalidRequest,
	decrypttext.ErrInvalidRequest,
	preparetext.ErrInvalidRequest,
	gettable.ErrInvalidRequest,
	computegcd.ErrInvalidRequest,
	computemodpow.ErrInvalidRequest,
	factorize.ErrInvalidRequest,
}

func (a *API) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheme.ErrUnknownScheme), errors.Is(err, ciphers.ErrUnsupportedScheme):
		c.JSON(http.StatusNotFound, Error{Error: err.Error()})
		return
	}
	for _, known := range badRequestErrors {
		if errors.Is(err, known) {
			c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
			return
		}
	}
	a.logger.Error().Err(err).Str("path", c.FullPath()).Msg("Failed to serve request")
	c.JSON(http.StatusInternalServerError, Error{Error: "Internal server error"})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
}
