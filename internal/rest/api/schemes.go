package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/cryptotools/internal/core/entities/scheme"
	"github.com/sergeii/cryptotools/internal/core/usecases/decrypttext"
	"github.com/sergeii/cryptotools/internal/core/usecases/encrypttext"
	"github.com/sergeii/cryptotools/internal/core/usecases/preparetext"
	"github.com/sergeii/cryptotools/internal/rest/model"
)

// ListSchemes godoc
// @Summary      List schemes
// @Description  List the cipher schemes available for encryption and decryption
// @Tags         schemes
// @Produce      json
// @Success      200 {array} model.Scheme
// @Router       /schemes [get]
func (a *API) ListSchemes(c *gin.Context) {
	schemes := a.registry.Schemes()
	result := make([]model.Scheme, 0, len(schemes))
	for _, s := range schemes {
		result = append(result, model.NewSchemeFromDomain(s))
	}
	c.JSON(http.StatusOK, result)
}

// EncryptText godoc
// @Summary      Encrypt text
// @Description  Encrypt the text with the given key under the chosen scheme
// @Tags         schemes
// @Accept       json
// @Produce      json
// @Param        scheme  path      string            true  "Scheme slug (playfair, shift)"
// @Param        body    body      model.CipherText  true  "Key and plaintext"
// @Success      200     {object}  model.CipherResult
// @Failure      400     {object}  api.Error
// @Failure      404     {object}  api.Error
// @Router       /schemes/{scheme}/encrypt [post]
func (a *API) EncryptText(c *gin.Context) {
	s, ok := a.bindScheme(c)
	if !ok {
		return
	}

	var body model.CipherText
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	ciphertext, err := a.container.EncryptText.Execute(c, encrypttext.NewRequest(s, body.Key, body.Text))
	if err != nil {
		a.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewCipherResult(s, ciphertext))
}

// DecryptText godoc
// @Summary      Decrypt text
// @Description  Decrypt the text with the given key under the chosen scheme
// @Tags         schemes
// @Accept       json
// @Produce      json
// @Param        scheme  path      string            true  "Scheme slug (playfair, shift)"
// @Param        body    body      model.CipherText  true  "Key and ciphertext"
// @Success      200     {object}  model.CipherResult
// @Failure      400     {object}  api.Error
// @Failure      404     {object}  api.Error
// @Router       /schemes/{scheme}/decrypt [post]
func (a *API) DecryptText(c *gin.Context) {
	s, ok := a.bindScheme(c)
	if !ok {
		return
	}

	var body model.CipherText
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	plaintext, err := a.container.DecryptText.Execute(c, decrypttext.NewRequest(s, body.Key, body.Text))
	if err != nil {
		a.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewCipherResult(s, plaintext))
}

// PrepareText godoc
// @Summary      Prepare text
// @Description  Normalize the plaintext the way the scheme does before encryption
// @Tags         schemes
// @Accept       json
// @Produce      json
// @Param        scheme  path      string             true  "Scheme slug (playfair, shift)"
// @Param        body    body      model.PrepareText  true  "Plaintext"
// @Success      200     {object}  model.CipherResult
// @Failure      400     {object}  api.Error
// @Failure      404     {object}  api.Error
// @Router       /schemes/{scheme}/prepare [post]
func (a *API) PrepareText(c *gin.Context) {
	s, ok := a.bindScheme(c)
	if !ok {
		return
	}

	var body model.PrepareText
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	prepared, err := a.container.PrepareText.Execute(c, preparetext.NewRequest(s, body.Text))
	if err != nil {
		a.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewCipherResult(s, prepared))
}

func (a *API) bindScheme(c *gin.Context) (scheme.Scheme, bool) {
	s, err := scheme.FromSlug(c.Param("scheme"))
	if err == nil && !a.registry.IsRegistered(s) {
		err = scheme.ErrUnknownScheme
	}
	if err != nil {
		a.logger.Debug().Str("scheme", c.Param("scheme")).Msg("Requested scheme not found")
		a.renderError(c, err)
		return scheme.Unknown, false
	}
	return s, true
}
