//go:build unit

package api_test

import (
	"net/http"

	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const bearer = "bearer-token"

// fakeAuth stands in for RequireAuth: any bearer header authenticates as *actor.
func fakeAuth(actor *shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, *actor)
		c.Next()
	}
}
