package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/cryptotools/internal/core/usecases/computegcd"
	"github.com/sergeii/cryptotools/internal/core/usecases/computemodpow"
	"github.com/sergeii/cryptotools/internal/core/usecases/factorize"
	"github.com/sergeii/cryptotools/internal/rest/model"
)

// ComputeGCD godoc
// @Summary      Greatest common divisor
// @Tags         numtheory
// @Produce      json
// @Param        a    query     int  true  "First number"
// @Param        b    query     int  true  "Second number"
// @Success      200  {object}  model.GCD
// @Failure      400  {object}  api.Error
// @Router       /numtheory/gcd [get]
func (a *API) ComputeGCD(c *gin.Context) {
	var query model.GCDQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}

	gcd, err := a.container.ComputeGCD.Execute(c, computegcd.NewRequest(*query.A, *query.B))
	if err != nil {
		a.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.GCD{A: *query.A, B: *query.B, GCD: gcd})
}

// ComputeModPow godoc
// @Summary      Modular exponentiation
// @Description  Compute base^exponent mod modulus
// @Tags         numtheory
// @Produce      json
// @Param        base      query     int  true  "Base"
// @Param        exponent  query     int  true  "Non-negative exponent"
// @Param        modulus   query     int  true  "Positive modulus"
// @Success      200       {object}  model.ModPow
// @Failure      400       {object}  api.Error
// @Router       /numtheory/modpow [get]
func (a *API) ComputeModPow(c *gin.Context) {
	var query model.ModPowQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}

	ucRequest := computemodpow.NewRequest(*query.Base, *query.Exponent, *query.Modulus)
	result, err := a.container.ComputeModPow.Execute(c, ucRequest)
	if err != nil {
		a.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ModPow{
		Base:     *query.Base,
		Exponent: *query.Exponent,
		Modulus:  *query.Modulus,
		Result:   result,
	})
}

// Factorize godoc
// @Summary      Factorize number
// @Description  Split the number into two factors with Fermat's method, trivial when none are found
// @Tags         numtheory
// @Produce      json
// @Param        n    query     int  true  "Positive number"
// @Success      200  {object}  model.Factorization
// @Failure      400  {object}  api.Error
// @Router       /numtheory/factor [get]
func (a *API) Factorize(c *gin.Context) {
	var query model.FactorQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}

	result, err := a.container.Factorize.Execute(c, factorize.NewRequest(*query.N))
	if err != nil {
		a.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewFactorizationFromDomain(result))
}
