package api

import (
	"net/http"

	"lavish/store-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserFetch lists registered users. The model keeps the password hash
// out of its JSON form, so credential material never leaves this
// endpoint, and the route sits behind the auth gate
func (a *API) UserFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var users []model.User

	err := a.DB.
		Order("created_at desc").
		Find(&users).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch users", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All users fetched successfully",
		"data":    users,
	})
}
