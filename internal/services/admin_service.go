package services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/domain"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/metrics"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/upstream"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/utils"
)

// AdminService backs the admin panel: route creation, the raw history
// dump, and the analytics chart data. All three are independent.
type AdminService struct {
	Backend   Backend
	RequestID string
}

// RouteForm carries the add-route form as submitted. Numeric fields
// arrive as raw input values; anything non-numeric coerces to zero,
// and the rating is fixed at 4.0 regardless of input.
type RouteForm struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
	Duration    string `json:"duration_mins"`
	Price       string `json:"price"`
	Seats       string `json:"seats_available"`
	Mode        string `json:"mode"`
}

const fixedRouteRating = 4.0

func (s AdminService) AddRoute(ctx context.Context, form RouteForm) error {
	utils.LogEvent(s.RequestID, "admin", "add_route", "id="+form.ID+" mode="+form.Mode)

	payload := upstream.RoutePayload{
		ID:             form.ID,
		Name:           form.Name,
		Origin:         form.Origin,
		Destination:    form.Destination,
		Departure:      form.Departure,
		Arrival:        form.Arrival,
		DurationMins:   atoiOrZero(form.Duration),
		Price:          atofOrZero(form.Price),
		SeatsAvailable: atoiOrZero(form.Seats),
		Mode:           form.Mode,
		Rating:         fixedRouteRating,
	}

	resp, err := s.Backend.AddRoute(ctx, payload)
	if err != nil {
		metrics.IncUpstreamFailure("admin_add_route")
		return err
	}
	if resp.Status != "ok" {
		msg := resp.Error
		if msg == "" {
			msg = "route was rejected"
		}
		return domain.ConflictError{Resource: "route", Msg: msg}
	}
	return nil
}

func (s AdminService) History(ctx context.Context) (json.RawMessage, error) {
	utils.LogEvent(s.RequestID, "admin", "history", "")
	raw, err := s.Backend.AdminHistory(ctx)
	if err != nil {
		metrics.IncUpstreamFailure("admin_history")
		return nil, err
	}
	return raw, nil
}

func (s AdminService) Analytics(ctx context.Context) ([]domain.ModeCount, error) {
	utils.LogEvent(s.RequestID, "admin", "analytics", "")
	counts, err := s.Backend.TransportCounts(ctx)
	if err != nil {
		metrics.IncUpstreamFailure("analytics_transports")
		return nil, err
	}
	if counts == nil {
		counts = []domain.ModeCount{}
	}
	return counts, nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func atofOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
