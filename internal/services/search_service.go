package services

import (
	"context"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/domain"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/metrics"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/utils"
)

// SearchService answers route searches with the best (cheapest) choice
// split out from the rest. The gateway owns "best" for plain searches;
// for website comparison the backend's best_offer is trusted as-is.
type SearchService struct {
	Backend   Backend
	RequestID string
}

type SearchResult struct {
	Count   int                 `json:"count"`
	Best    *domain.Transport   `json:"best,omitempty"`
	Others  []domain.Transport  `json:"others,omitempty"`
	Message string              `json:"message,omitempty"`
}

func (s SearchService) Search(ctx context.Context, origin, destination, mode string) (SearchResult, error) {
	utils.LogEvent(s.RequestID, "search", "query", origin+" -> "+destination+" mode="+mode)

	resp, err := s.Backend.Search(ctx, origin, destination, mode)
	if err != nil {
		metrics.IncUpstreamFailure("search")
		return SearchResult{}, err
	}

	if resp.Count == 0 {
		return SearchResult{Count: 0, Message: "No matching routes found."}, nil
	}
	if len(resp.Results) == 0 {
		return SearchResult{}, domain.UpstreamError{Op: "search", Msg: "route list missing from response"}
	}

	best, others, _ := domain.BestChoice(resp.Results)
	return SearchResult{
		Count:  resp.Count,
		Best:   &best,
		Others: others,
	}, nil
}

type CompareResult struct {
	Count   int                   `json:"count"`
	Matches []domain.CompareMatch `json:"matches,omitempty"`
	Message string                `json:"message,omitempty"`
}

// Compare relays the website comparison. best_offer stays whatever the
// backend said it was.
func (s SearchService) Compare(ctx context.Context, origin, destination, mode string) (CompareResult, error) {
	utils.LogEvent(s.RequestID, "compare", "query", origin+" -> "+destination+" mode="+mode)

	resp, err := s.Backend.CompareWebsites(ctx, origin, destination, mode)
	if err != nil {
		metrics.IncUpstreamFailure("compare_websites")
		return CompareResult{}, err
	}

	if resp.Count == 0 {
		return CompareResult{Count: 0, Message: "No routes found for this query."}, nil
	}
	if len(resp.Matches) == 0 {
		return CompareResult{}, domain.UpstreamError{Op: "compare_websites", Msg: "match list missing from response"}
	}

	return CompareResult{Count: resp.Count, Matches: resp.Matches}, nil
}
