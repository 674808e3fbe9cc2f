package handlers

import (
	"net/http"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/http/middleware"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/services"
	"github.com/gin-gonic/gin"
)

func (h *Handlers) Compare(c *gin.Context) {
	var req searchRequest
	if !bindJSON(c, &req) {
		return
	}
	req.normalize()
	if !req.complete() {
		RespondError(c, http.StatusUnprocessableEntity, "origin, destination and mode are required")
		return
	}

	svc := services.SearchService{Backend: h.Backend, RequestID: middleware.GetRequestID(c)}
	result, err := svc.Compare(c.Request.Context(), req.Origin, req.Destination, req.Mode)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
