package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Env struct {
	AppAddr string
	GinMode string

	// Base URL of the transport backend that owns routes, offers,
	// history, analytics and chatbot replies.
	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	CORSAllowedOrigins []string

	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         []byte

	// Idle lifetime of a booking session before the sweeper drops it.
	SessionTTL time.Duration
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	upstreamURL := strings.TrimSpace(os.Getenv("UPSTREAM_BASE_URL"))
	if upstreamURL == "" {
		upstreamURL = "http://localhost:5000"
	}

	timeout := 15 * time.Second
	if v := strings.TrimSpace(os.Getenv("UPSTREAM_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	ttl := 30 * time.Minute
	if v := strings.TrimSpace(os.Getenv("SESSION_TTL_MINUTES")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Minute
		}
	}

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		origins = origins[:0]
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
		log.Println("warning: JWT_SECRET not set, using insecure default")
	}

	adminEmail := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	if adminEmail == "" {
		adminEmail = "admin@localhost"
	}

	adminHash := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))
	if adminHash == "" {
		// Fall back to hashing a plaintext ADMIN_PASSWORD at startup.
		pw := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD"))
		if pw == "" {
			pw = "admin123"
			log.Println("warning: ADMIN_PASSWORD not set, using insecure default")
		}
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		adminHash = string(h)
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		UpstreamBaseURL:    upstreamURL,
		UpstreamTimeout:    timeout,
		CORSAllowedOrigins: origins,
		AdminEmail:         adminEmail,
		AdminPasswordHash:  adminHash,
		JWTSecret:          []byte(secret),
		SessionTTL:         ttl,
	}
}
