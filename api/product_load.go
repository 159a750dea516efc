package api

import (
	"errors"
	"net/http"
	"strconv"

	"lavish/store-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// loadOwnedProduct resolves the :id parameter and enforces ownership
// for the mutating and single-record paths. The record is loaded by id
// alone and the owner compared afterwards, never folded into one
// query, because "doesn't exist" (404) and "exists but isn't yours"
// (403) must stay distinguishable to the caller. On failure the
// response has already been written and ok is false.
func (a *API) loadOwnedProduct(c *gin.Context) (product model.Product, ok bool) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Invalid product ID",
			"requestID": requestID,
		})
		return product, false
	}

	err = a.DB.
		Where("id = ?", id).
		First(&product).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success":   false,
				"message":   "Product not found",
				"requestID": requestID,
			})
			return product, false
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch product", zap.Error(err), zap.String("requestID", requestID))
		return product, false
	}

	if product.UserID != userID {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success":   false,
			"message":   "Not authorized",
			"requestID": requestID,
		})
		return product, false
	}

	return product, true
}
