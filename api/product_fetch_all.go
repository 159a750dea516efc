package api

import (
	"net/http"

	"lavish/store-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductFetchAll is the public storefront listing. No auth, every
// owner's products
func (a *API) ProductFetchAll(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var products []model.Product

	err := a.DB.
		Find(&products).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Server Error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch products", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}
