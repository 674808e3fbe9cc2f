package services

import (
	"context"
	"encoding/json"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/domain"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/upstream"
)

// Backend is the slice of the upstream client the services consume.
// *upstream.Client satisfies it; tests substitute a stub.
type Backend interface {
	Search(ctx context.Context, origin, destination, mode string) (upstream.SearchResponse, error)
	CompareWebsites(ctx context.Context, origin, destination, mode string) (upstream.CompareResponse, error)
	Book(ctx context.Context, transportID string) error
	BookingHistory(ctx context.Context) (upstream.HistoryResponse, error)
	AddRoute(ctx context.Context, route upstream.RoutePayload) (upstream.AddRouteResponse, error)
	AdminHistory(ctx context.Context) (json.RawMessage, error)
	TransportCounts(ctx context.Context) ([]domain.ModeCount, error)
	Chat(ctx context.Context, message string) (string, error)
}
