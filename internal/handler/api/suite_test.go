//go:build unit

package api_test

import (
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	testEmail = "shopper@example.com"
	testToken = "bearer-token"
)

var testShopperID = uuid.MustParse("6b0f3a52-2d1b-4d7e-9c55-0b7f0d6a9e11")

// stubAuth stands in for the JWT middleware: any bearer token authenticates
// as the fixed test shopper, no token leaves the request anonymous.
func stubAuth(c *gin.Context) {
	if c.GetHeader("Authorization") != "" {
		s, _ := shopper.New(testShopperID, testEmail)
		middleware.SetShopper(c, s)
	}
	c.Next()
}
