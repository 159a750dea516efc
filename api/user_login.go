package api

import (
	"errors"
	"net/http"

	"lavish/store-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) UserLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Email == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Email field can't be empty",
			"requestID": requestID,
		})
		return
	}

	if data.Password == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Password field can't be empty",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	if err := a.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success":   false,
				"message":   "User not found. Please register",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	ok, err := a.Argon.VerifyPasswd(data.Password, user.PasswordHash)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to verify password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success":   false,
			"message":   "Invalid credentials",
			"requestID": requestID,
		})
		return
	}

	token, err := a.Signer.Issue(user.ID, user.Email)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to sign auth token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"userId":    user.ID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"email":     user.Email,
		},
	})
}
