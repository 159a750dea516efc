package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) ProductGet(c *gin.Context) {
	product, ok := a.loadOwnedProduct(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}
