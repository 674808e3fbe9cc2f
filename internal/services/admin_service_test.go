package services

import (
	"context"
	"testing"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/domain"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/upstream"
)

func TestAddRouteCoercesNumericFields(t *testing.T) {
	backend := &stubBackend{addRouteResp: upstream.AddRouteResponse{Status: "ok"}}
	svc := AdminService{Backend: backend}

	form := RouteForm{
		ID:          "train_DX1",
		Name:        "Deccan Express",
		Origin:      "Pune",
		Destination: "Mumbai",
		Duration:    "not-a-number",
		Price:       "450.50",
		Seats:       "",
		Mode:        "train",
	}
	if err := svc.AddRoute(context.Background(), form); err != nil {
		t.Fatalf("add route: %v", err)
	}

	p := backend.addRoutePayload
	if p == nil {
		t.Fatal("payload never reached the backend")
	}
	if p.DurationMins != 0 || p.SeatsAvailable != 0 {
		t.Errorf("non-numeric fields must coerce to 0, got duration=%d seats=%d", p.DurationMins, p.SeatsAvailable)
	}
	if p.Price != 450.50 {
		t.Errorf("price = %v, want 450.50", p.Price)
	}
	if p.Rating != 4.0 {
		t.Errorf("rating is fixed at 4.0, got %v", p.Rating)
	}
}

func TestAddRouteRejectionSurfacesError(t *testing.T) {
	backend := &stubBackend{addRouteResp: upstream.AddRouteResponse{Status: "error", Error: "duplicate id"}}
	svc := AdminService{Backend: backend}

	err := svc.AddRoute(context.Background(), RouteForm{ID: "train_DX1", Mode: "train"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err.Error() != "route conflict: duplicate id" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestAnalyticsNeverReturnsNil(t *testing.T) {
	svc := AdminService{Backend: &stubBackend{}}
	counts, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if counts == nil {
		t.Error("counts must serialize as [] rather than null")
	}
}
