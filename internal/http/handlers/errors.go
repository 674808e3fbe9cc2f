package handlers

import (
	"net/http"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/domain"
	"github.com/gin-gonic/gin"
)

// RespondDomainError maps a domain error onto its HTTP status.
// Validation failures are unprocessable input, conflicts are flow
// violations, and upstream failures surface as a bad gateway.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error())
	case domain.IsUpstream(err):
		RespondError(c, http.StatusBadGateway, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
