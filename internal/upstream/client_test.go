package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/domain"
)

func TestSearchDecodesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/search" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":2,"results":[
			{"id":"FL1","name":"IndiGo","mode":"flight","origin":"Delhi","destination":"Mumbai","price":4500,"seats_available":12},
			{"id":"FL2","name":"Air India","mode":"flight","origin":"Delhi","destination":"Mumbai","price":3900,"seats_available":4}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	resp, err := c.Search(context.Background(), "Delhi", "Mumbai", "flight")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if resp.Count != 2 || len(resp.Results) != 2 {
		t.Fatalf("unexpected response: count=%d results=%d", resp.Count, len(resp.Results))
	}
	if resp.Results[1].ID != "FL2" || resp.Results[1].Price != 3900 {
		t.Errorf("unexpected second result: %+v", resp.Results[1])
	}
}

func TestSearchNetworkFailureIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, time.Second)
	_, err := c.Search(context.Background(), "Delhi", "Mumbai", "flight")
	if !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestMalformedBodyIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.BookingHistory(context.Background())
	if !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error for malformed body, got %v", err)
	}
}

func TestErrorStatusIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if err := c.Book(context.Background(), "FL2"); !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error for 500, got %v", err)
	}
}

func TestChatReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reply":"The cheapest train leaves at 06:10."}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	reply, err := c.Chat(context.Background(), "cheapest train?")
	if err != nil {
		t.Fatalf("chat error: %v", err)
	}
	if reply != "The cheapest train leaves at 06:10." {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestAdminHistoryDefaultsToEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	raw, err := c.AdminHistory(context.Background())
	if err != nil {
		t.Fatalf("admin history error: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("expected empty list fallback, got %s", raw)
	}
}
