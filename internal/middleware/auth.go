package middleware

import (
	"strings"

	"github.com/an1skat/catopia-backend/internal/models/api_error"
	"github.com/an1skat/catopia-backend/internal/utils/utils_auth"
	"github.com/gin-gonic/gin"
	"net/http"
)

// Auth verifies the bearer credential and resolves it to a user id,
// stored under "UserID" in the request context. It never touches
// storage; handlers look the user up themselves when they need more
// than the id.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Error(api_error.NewFromStr("authorization header missing", http.StatusUnauthorized))
			c.Abort()
			return
		}

		accessToken := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils_auth.ParseAccessToken(accessToken)
		if err != nil {
			c.Error(api_error.NewFromStr("invalid or expired token", http.StatusUnauthorized))
			c.Abort()
			return
		}

		c.Set("UserID", userID)
		c.Next()
	}
}
