package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/config"
	router "github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/http"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/http/handlers"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/locations"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/metrics"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/services"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/upstream"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	metrics.Register()

	backend := upstream.NewClient(env.UpstreamBaseURL, env.UpstreamTimeout)

	catalog := locations.NewCatalog()
	{
		ctx, cancel := context.WithTimeout(context.Background(), env.UpstreamTimeout*5)
		catalog.LoadAll(ctx, backend)
		cancel()
	}

	bookings := services.NewBookingService(backend, env.SessionTTL)

	h := &handlers.Handlers{
		Env:      env,
		Backend:  backend,
		Catalog:  catalog,
		Bookings: bookings,
	}

	// Router (Gin engine)
	r := router.NewRouter(env, h)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Sweep abandoned booking sessions so half-finished modals don't pile up.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go func() {
		t := time.NewTicker(time.Minute)
		defer t.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-t.C:
				bookings.PurgeExpired()
			}
		}
	}()

	go func() {
		log.Printf("Booking gateway listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
