package handler

import "github.com/gin-gonic/gin"

// errorResponse sends a JSON error response with {error: message} format
// matching the dashboard frontend's expected error shape.
func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
