package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS allows the console frontend to call the API from any origin. The
// console serves operators on an internal network; origin restrictions are
// left to the deployment proxy.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
