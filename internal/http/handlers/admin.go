package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/http/middleware"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenLifetime = 24 * time.Hour

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin checks the single configured admin credential and issues
// a bearer token for the panel.
func (h *Handlers) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email != strings.ToLower(h.Env.AdminEmail) {
		RespondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.Env.AdminPasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	now := time.Now()
	expiresAt := now.Add(adminTokenLifetime)
	claims := jwt.MapClaims{
		"sub":  email,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.Env.JWTSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "could not issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
	})
}

// AdminAddRoute submits a new route to the backend catalog.
func (h *Handlers) AdminAddRoute(c *gin.Context) {
	var form services.RouteForm
	if !bindJSON(c, &form) {
		return
	}
	if strings.TrimSpace(form.ID) == "" || strings.TrimSpace(form.Mode) == "" {
		RespondError(c, http.StatusUnprocessableEntity, "id and mode are required")
		return
	}

	svc := services.AdminService{Backend: h.Backend, RequestID: middleware.GetRequestID(c)}
	if err := svc.AddRoute(c.Request.Context(), form); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

// AdminHistory relays the backend's raw booking dump unchanged.
func (h *Handlers) AdminHistory(c *gin.Context) {
	svc := services.AdminService{Backend: h.Backend, RequestID: middleware.GetRequestID(c)}
	raw, err := svc.History(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

func (h *Handlers) AdminAnalytics(c *gin.Context) {
	svc := services.AdminService{Backend: h.Backend, RequestID: middleware.GetRequestID(c)}
	counts, err := svc.Analytics(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":      len(counts),
		"transports": counts,
	})
}
