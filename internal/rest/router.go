package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sergeii/cryptotools/api/docs" // nolint: revive
	"github.com/sergeii/cryptotools/internal/rest/api"
)

const requestIDHeader = "X-Request-ID"

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// NewRouter godoc
// @title        cryptotools API
// @description  Classical ciphers and number theory helpers
// @BasePath     /api
func NewRouter(a *api.API) *gin.Engine {
	router := gin.Default()
	router.Use(requestID())
	router.GET("/status", a.Status)

	schemes := router.Group("/api/schemes")
	schemes.GET("", a.ListSchemes)
	schemes.POST("/:scheme/encrypt", a.EncryptText)
	schemes.POST("/:scheme/decrypt", a.DecryptText)
	schemes.POST("/:scheme/prepare", a.PrepareText)

	router.GET("/api/playfair/table", a.ViewTable)

	numbers := router.Group("/api/numtheory")
	numbers.GET("/gcd", a.ComputeGCD)
	numbers.GET("/modpow", a.ComputeModPow)
	numbers.GET("/factor", a.Factorize)

	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
