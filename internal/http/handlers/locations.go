package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Locations serves the dropdown options for one travel mode. A mode
// with no loaded dataset comes back with available=false and empty
// lists so the dropdowns can reset instead of erroring.
func (h *Handlers) Locations(c *gin.Context) {
	mode := strings.TrimSpace(c.Query("mode"))
	if mode == "" {
		RespondError(c, http.StatusUnprocessableEntity, "mode query parameter is required")
		return
	}

	origins, destinations, ok := h.Catalog.Options(mode)
	c.JSON(http.StatusOK, gin.H{
		"mode":         mode,
		"available":    ok,
		"origins":      origins,
		"destinations": destinations,
	})
}
