package handler

import (
	"net/http"

	"github.com/Sachin-MethodTech/analytics-dashboard/internal/version"
	"github.com/gin-gonic/gin"
)

// Health returns the service liveness status.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Short(),
	})
}
