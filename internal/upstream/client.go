// Package upstream is the typed HTTP client for the transport backend
// that owns routes, website offers, booking history, analytics and the
// chatbot. The gateway holds no data of its own; everything here is a
// JSON call against that backend.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Rudh1830/Smart-Transportation-Ticketing-Assistant/internal/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// doJSON performs one request and decodes the JSON body into out (when
// out is non-nil). Transport failures and undecodable bodies both come
// back as domain.UpstreamError; callers surface them, nothing retries.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	op := method + " " + path

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return domain.InternalError{Msg: "encode request payload", Err: err}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return domain.InternalError{Msg: "build request", Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.UpstreamError{Op: op, Msg: "backend unreachable", Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.UpstreamError{
			Op:  op,
			Msg: fmt.Sprintf("backend returned %d: %s", resp.StatusCode, truncate(raw, 200)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.UpstreamError{Op: op, Msg: "invalid response format", Err: err}
	}
	return nil
}

type searchRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
}

type SearchResponse struct {
	Count   int                `json:"count"`
	Results []domain.Transport `json:"results"`
}

func (c *Client) Search(ctx context.Context, origin, destination, mode string) (SearchResponse, error) {
	var resp SearchResponse
	err := c.doJSON(ctx, http.MethodPost, "/search", searchRequest{origin, destination, mode}, &resp)
	return resp, err
}

type CompareResponse struct {
	Count   int                   `json:"count"`
	Matches []domain.CompareMatch `json:"matches"`
}

func (c *Client) CompareWebsites(ctx context.Context, origin, destination, mode string) (CompareResponse, error) {
	var resp CompareResponse
	err := c.doJSON(ctx, http.MethodPost, "/compare_websites", searchRequest{origin, destination, mode}, &resp)
	return resp, err
}

// Book logs a booking against the backend. The response body carries
// nothing the flow needs, so it is discarded.
func (c *Client) Book(ctx context.Context, transportID string) error {
	payload := map[string]string{"id": transportID}
	return c.doJSON(ctx, http.MethodPost, "/book", payload, nil)
}

type HistoryResponse struct {
	Count   int                   `json:"count"`
	History []domain.HistoryEntry `json:"history"`
}

func (c *Client) BookingHistory(ctx context.Context) (HistoryResponse, error) {
	var resp HistoryResponse
	err := c.doJSON(ctx, http.MethodGet, "/booking_history", nil, &resp)
	return resp, err
}

// RoutePayload is the add-route form as the backend expects it.
type RoutePayload struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	Departure      string  `json:"departure"`
	Arrival        string  `json:"arrival"`
	DurationMins   int     `json:"duration_mins"`
	Price          float64 `json:"price"`
	SeatsAvailable int     `json:"seats_available"`
	Mode           string  `json:"mode"`
	Rating         float64 `json:"rating"`
}

type AddRouteResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func (c *Client) AddRoute(ctx context.Context, route RoutePayload) (AddRouteResponse, error) {
	var resp AddRouteResponse
	err := c.doJSON(ctx, http.MethodPost, "/admin/add_route", route, &resp)
	return resp, err
}

// AdminHistory dumps the raw history list; the admin panel renders it
// verbatim, so it stays a RawMessage.
func (c *Client) AdminHistory(ctx context.Context) (json.RawMessage, error) {
	var resp struct {
		History json.RawMessage `json:"history"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/admin/history", nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.History) == 0 {
		resp.History = json.RawMessage("[]")
	}
	return resp.History, nil
}

func (c *Client) TransportCounts(ctx context.Context) ([]domain.ModeCount, error) {
	var resp struct {
		Counts []domain.ModeCount `json:"counts"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/analytics/transports", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Counts, nil
}

func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var resp struct {
		Reply string `json:"reply"`
	}
	payload := map[string]string{"message": message}
	if err := c.doJSON(ctx, http.MethodPost, "/chat", payload, &resp); err != nil {
		return "", err
	}
	return resp.Reply, nil
}

// Dataset fetches one static per-mode dataset, e.g. key "trains" for
// /data/trains.json.
func (c *Client) Dataset(ctx context.Context, fileKey string) ([]domain.Transport, error) {
	var records []domain.Transport
	if err := c.doJSON(ctx, http.MethodGet, "/data/"+fileKey+".json", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func truncate(raw []byte, n int) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
