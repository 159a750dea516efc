package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) Banner(c *gin.Context) {
	c.String(http.StatusOK, "Backend is running")
}
