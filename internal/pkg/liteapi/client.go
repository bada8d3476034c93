package liteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config carries the inventory provider endpoint and credentials.
// Injected explicitly; the client holds no ambient global state.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client is an HTTP client for the hotel inventory provider.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// envelope is the provider's standard response wrapper.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *APIError       `json:"error,omitempty"`
}

// APIError is the provider's error payload.
type APIError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
}

// ProviderError reports a non-2xx provider response.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("inventory provider error: status=%d message=%s", e.StatusCode, e.Message)
}

// ErrTimeout marks a provider call that exceeded its deadline.
var ErrTimeout = errors.New("inventory provider timeout")

// Occupancy describes one room request in a rate quote.
type Occupancy struct {
	Adults       int   `json:"adults"`
	ChildrenAges []int `json:"childrenAges,omitempty"`
}

// RatesRequest is the provider rate-quote payload.
type RatesRequest struct {
	HotelIDs         []string    `json:"hotelIds"`
	Checkin          string      `json:"checkin"`
	Checkout         string      `json:"checkout"`
	Occupancies      []Occupancy `json:"occupancies"`
	Currency         string      `json:"currency"`
	GuestNationality string      `json:"guestNationality"`
	MappedRoomID     bool        `json:"mappedRoomId"`
}

// NewClient creates a new inventory provider client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// SearchHotels returns the provider's hotel list for a country/city pair.
// The data payload is passed through untouched.
func (c *Client) SearchHotels(ctx context.Context, countryCode, cityName string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("countryCode", countryCode)
	q.Set("cityName", cityName)
	return c.get(ctx, "/data/hotels?"+q.Encode())
}

// GetHotel returns hotel details with nested rooms.
func (c *Client) GetHotel(ctx context.Context, hotelID string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("hotelId", hotelID)
	return c.get(ctx, "/data/hotel?"+q.Encode())
}

// GetRates quotes room rates for a hotel, date range and occupancy.
func (c *Client) GetRates(ctx context.Context, req RatesRequest) (json.RawMessage, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode rates request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hotels/rates", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build rates request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq)
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build provider request: %w", err)
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(req.Context(), err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("inventory provider request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Surface the provider's own message when it sends one
		var env envelope
		if jsonErr := json.Unmarshal(body, &env); jsonErr == nil && env.Error != nil && env.Error.Message != "" {
			return nil, &ProviderError{StatusCode: resp.StatusCode, Message: env.Error.Message}
		}
		return nil, &ProviderError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP error! Status: %d", resp.StatusCode),
		}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}
	return env.Data, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
