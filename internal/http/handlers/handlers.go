package handlers

import (
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/config"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/locations"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/services"
)

// Handlers holds the shared dependencies for every HTTP endpoint.
// Per-request services are built inside each handler so they can carry
// the request ID into their logs.
type Handlers struct {
	Env      config.Env
	Backend  services.Backend
	Catalog  *locations.Catalog
	Bookings *services.BookingService
}
