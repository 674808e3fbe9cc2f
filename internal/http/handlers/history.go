package handlers

import (
	"net/http"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/services"
	"github.com/gin-gonic/gin"
)

func (h *Handlers) History(c *gin.Context) {
	svc := services.HistoryService{Backend: h.Backend}
	result, err := svc.Recent(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
