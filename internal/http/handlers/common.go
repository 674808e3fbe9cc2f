package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondError writes the uniform error envelope.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// bindJSON decodes the request body into dst and answers 400 itself on
// malformed input. Returns false when the handler should stop.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
