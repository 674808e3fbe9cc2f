package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/domain"
	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/upstream"
)

func TestSearchPicksCheapestAsBest(t *testing.T) {
	backend := &stubBackend{searchResp: upstream.SearchResponse{
		Count: 2,
		Results: []domain.Transport{
			{ID: "FL1", Name: "IndiGo 6E-204", Mode: "flight", Origin: "Delhi", Destination: "Mumbai", Price: 4500},
			{ID: "FL2", Name: "Air India AI-805", Mode: "flight", Origin: "Delhi", Destination: "Mumbai", Price: 3900},
		},
	}}
	svc := SearchService{Backend: backend}

	res, err := svc.Search(context.Background(), "Delhi", "Mumbai", "flight")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Best == nil || res.Best.ID != "FL2" || res.Best.Price != 3900 {
		t.Fatalf("best choice should be the 3900 flight, got %+v", res.Best)
	}
	if len(res.Others) != 1 || res.Others[0].ID != "FL1" {
		t.Errorf("remaining results should render below, got %+v", res.Others)
	}
	for _, o := range res.Others {
		if res.Best.Price > o.Price {
			t.Errorf("best price %v exceeds %v", res.Best.Price, o.Price)
		}
	}
}

func TestSearchEmptyResultIsInformational(t *testing.T) {
	svc := SearchService{Backend: &stubBackend{}}
	res, err := svc.Search(context.Background(), "Delhi", "Pluto", "flight")
	if err != nil {
		t.Fatalf("empty result is not an error: %v", err)
	}
	if res.Count != 0 || res.Message == "" || res.Best != nil {
		t.Errorf("unexpected empty-result payload: %+v", res)
	}
}

func TestSearchMalformedShape(t *testing.T) {
	backend := &stubBackend{searchResp: upstream.SearchResponse{Count: 3}}
	svc := SearchService{Backend: backend}
	if _, err := svc.Search(context.Background(), "a", "b", "bus"); !domain.IsUpstream(err) {
		t.Errorf("count without results is a malformed response, got %v", err)
	}
}

func TestSearchUpstreamFailurePropagates(t *testing.T) {
	backend := &stubBackend{searchErr: domain.UpstreamError{Op: "search", Err: errors.New("dial tcp: refused")}}
	svc := SearchService{Backend: backend}
	if _, err := svc.Search(context.Background(), "a", "b", "bus"); !domain.IsUpstream(err) {
		t.Errorf("expected upstream error, got %v", err)
	}
}

func TestCompareTrustsBackendBestOffer(t *testing.T) {
	// The backend says B is best; the gateway must not recompute it.
	backend := &stubBackend{compareResp: upstream.CompareResponse{
		Count: 1,
		Matches: []domain.CompareMatch{
			{
				Transport: domain.Transport{ID: "TR1", Name: "Deccan Express", Mode: "train", Price: 1100},
				Offers: []domain.Offer{
					{Site: "A", ListPrice: 1100, Discount: 9, FinalPrice: 1000},
					{Site: "B", ListPrice: 1100, Discount: 18, FinalPrice: 900},
				},
				BestOffer: &domain.Offer{Site: "B", ListPrice: 1100, Discount: 18, FinalPrice: 900},
			},
		},
	}}
	svc := SearchService{Backend: backend}

	res, err := svc.Compare(context.Background(), "Pune", "Mumbai", "train")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	best := res.Matches[0].BestOffer
	if best == nil || best.Site != "B" || best.FinalPrice != 900 {
		t.Errorf("best website offer should read B at 900, got %+v", best)
	}
}

func TestCompareEmptyIsInformational(t *testing.T) {
	svc := SearchService{Backend: &stubBackend{}}
	res, err := svc.Compare(context.Background(), "x", "y", "taxi")
	if err != nil {
		t.Fatalf("empty compare is not an error: %v", err)
	}
	if res.Count != 0 || res.Message == "" {
		t.Errorf("unexpected empty compare payload: %+v", res)
	}
}
