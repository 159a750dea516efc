package api

import (
	"net/http"

	"lavish/store-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductFetch returns every product owned by the caller, newest first
func (a *API) ProductFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var products []model.Product

	err := a.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&products).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Error fetching products",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user products", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}
