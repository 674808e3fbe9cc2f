package handlers

import (
	"net/http"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/services"
	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handlers) Chat(c *gin.Context) {
	var req chatRequest
	if !bindJSON(c, &req) {
		return
	}

	svc := services.ChatService{Backend: h.Backend}
	reply, err := svc.Reply(c.Request.Context(), req.Message)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
