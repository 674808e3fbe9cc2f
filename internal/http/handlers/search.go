package handlers

import (
	"net/http"
	"strings"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/http/middleware"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/services"
	"github.com/gin-gonic/gin"
)

type searchRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
}

func (r *searchRequest) normalize() {
	r.Origin = strings.TrimSpace(r.Origin)
	r.Destination = strings.TrimSpace(r.Destination)
	r.Mode = strings.TrimSpace(r.Mode)
}

func (r searchRequest) complete() bool {
	return r.Origin != "" && r.Destination != "" && r.Mode != ""
}

func (h *Handlers) Search(c *gin.Context) {
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
	result, err := svc.Search(c.Request.Context(), req.Origin, req.Destination, req.Mode)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
