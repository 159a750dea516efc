package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"lavish/store-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductUpdate applies a partial update. Only fields present in the
// request change, and the owner never does, no matter what the body
// says
func (a *API) ProductUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	product, ok := a.loadOwnedProduct(c)
	if !ok {
		return
	}

	var data productBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.ProductUpdateValidator(data.Price, data.Quantity); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   err.Error(),
			"requestID": requestID,
		})
		return
	}

	newImage, ok := a.uploadProductImage(c)
	if !ok {
		return
	}

	oldImage := product.Image

	if data.Name != nil {
		product.Name = strings.TrimSpace(*data.Name)
	}
	if data.Description != nil {
		product.Description = strings.TrimSpace(*data.Description)
	}
	if data.Price != nil {
		product.Price = *data.Price
	}
	if data.Quantity != nil {
		product.Quantity = *data.Quantity
	}
	if data.Category != nil {
		product.Category = strings.TrimSpace(*data.Category)
	}
	if data.SubCategory != nil {
		product.SubCategory = strings.TrimSpace(*data.SubCategory)
	}
	if data.Sizes != nil {
		product.Sizes = validators.SplitList(*data.Sizes)
	}
	if data.Colors != nil {
		product.Colors = validators.SplitList(*data.Colors)
	}
	if newImage != "" {
		product.Image = newImage
	}

	product.UpdatedAt = time.Now().Unix()

	if err := a.DB.Save(&product).Error; err != nil {
		if newImage != "" {
			if delErr := a.Images.Delete(context.Background(), newImage); delErr != nil {
				zap.L().Warn("Failed to clean up image after failed update", zap.Error(delErr), zap.String("requestID", requestID))
			}
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Error updating product",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update product", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// The replaced image is unreferenced now, losing it is harmless
	if newImage != "" && oldImage != "" {
		if err := a.Images.Delete(context.Background(), oldImage); err != nil {
			zap.L().Warn("Failed to delete replaced image", zap.Error(err), zap.String("requestID", requestID))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated",
		"data":    product,
	})
}
