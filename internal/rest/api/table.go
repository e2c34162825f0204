package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/cryptotools/internal/core/usecases/gettable"
	"github.com/sergeii/cryptotools/internal/rest/model"
)

// ViewTable godoc
// @Summary      View Playfair table
// @Description  Show the 5x5 Playfair key table built from the key
// @Tags         playfair
// @Produce      json
// @Param        key  query     string  true  "Playfair key"
// @Success      200  {object}  model.Table
// @Failure      400  {object}  api.Error
// @Router       /playfair/table [get]
func (a *API) ViewTable(c *gin.Context) {
	var query model.TableQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}

	table, err := a.container.GetTable.Execute(c, gettable.NewRequest(query.Key))
	if err != nil {
		a.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewTableFromDomain(query.Key, table))
}
