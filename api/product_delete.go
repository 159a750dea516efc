package api

import (
	"context"
	"net/http"

	"lavish/store-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ProductDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	product, ok := a.loadOwnedProduct(c)
	if !ok {
		return
	}

	// Losing the delete on the stored image only strands an object in
	// the bucket, so it's logged and the record still goes away
	if product.Image != "" {
		if err := a.Images.Delete(context.Background(), product.Image); err != nil {
			zap.L().Warn("Failed to delete product image", zap.Error(err), zap.String("requestID", requestID))
		}
	}

	if err := a.DB.Delete(&model.Product{}, product.ID).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Error deleting product",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete product", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted",
	})
}
