// Package middleware contains any custom middleware used in the app
package middleware

import (
	"errors"
	"lavish/store-api/model"
	"lavish/store-api/pkg/security"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewAuthMiddleware returns the gate that turns a raw request into an
// authenticated one. It reads the Authorization header, verifies the
// bearer token and puts the caller's identity into the context for
// the handlers downstream. It never writes any state.
func NewAuthMiddleware(s *security.Signer, d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":   false,
				"message":   "No authentication token provided, access denied",
				"requestID": requestID,
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		userID, email, err := s.Verify(tokenStr)
		if err != nil {
			msg := "Token is invalid"
			if errors.Is(err, security.ErrTokenExpired) {
				msg = "Token has expired"
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":   false,
				"message":   msg,
				"requestID": requestID,
			})
			return
		}

		// Tokens outlive nothing server-side, but they can outlive the
		// user row itself (database reset, account removed by hand).
		// Reject those instead of letting ghosts own products
		var user model.User
		err = d.Where("id = ?", userID).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success":   false,
					"message":   "Authentication failed",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success":   false,
				"message":   "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", userID)
		c.Set("userEmail", email)
		c.Next()
	}
}
