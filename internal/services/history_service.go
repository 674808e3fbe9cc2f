package services

import (
	"context"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/domain"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/metrics"
)

// HistoryService reads the user's booking history. Read-only, fetched
// per view, never cached.
type HistoryService struct {
	Backend Backend
}

type HistoryResult struct {
	Count   int                   `json:"count"`
	History []domain.HistoryEntry `json:"history,omitempty"`
	Message string                `json:"message,omitempty"`
}

func (s HistoryService) Recent(ctx context.Context) (HistoryResult, error) {
	resp, err := s.Backend.BookingHistory(ctx)
	if err != nil {
		metrics.IncUpstreamFailure("booking_history")
		return HistoryResult{}, err
	}
	if resp.Count == 0 {
		return HistoryResult{Count: 0, Message: "No bookings made yet."}, nil
	}
	return HistoryResult{Count: resp.Count, History: resp.History}, nil
}
