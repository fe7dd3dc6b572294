// Package opennotify fetches the current ISS position from the Open Notify
// public API (http://api.open-notify.org/iss-now.json).
package opennotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charan-271/ISS-Tracker/internal/models"
)

const (
	// DefaultAPIURL is the fixed position endpoint.
	DefaultAPIURL = "http://api.open-notify.org/iss-now.json"

	// DefaultTimeout bounds a single fetch so a hung request cannot stall
	// the caller past one poll interval.
	DefaultTimeout = 10 * time.Second

	// maxBodyBytes caps how much of the response body is read.
	maxBodyBytes = 1 << 16 // 64 KB
)

// TransportError reports a transport-level failure or a non-2xx response.
type TransportError struct {
	StatusCode int // 0 when the request never produced a response
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("position fetch failed: %v", e.Err)
	}
	return fmt.Sprintf("position fetch failed: unexpected status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a malformed or incomplete position payload.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("position decode failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("position decode failed: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Client queries the position endpoint.
type Client struct {
	http *http.Client
	url  string
}

// NewClient builds a client for the given endpoint URL. An empty url selects
// DefaultAPIURL; a non-positive timeout selects DefaultTimeout.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultAPIURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
		url:  url,
	}
}

// URL returns the endpoint the client polls.
func (c *Client) URL() string { return c.url }

// flexFloat decodes a JSON number that the API may serve either as a number
// or as a numeric string ("-12.3456").
type flexFloat struct {
	value float64
	set   bool
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	f.value = v
	f.set = true
	return nil
}

type issPosition struct {
	Latitude  flexFloat `json:"latitude"`
	Longitude flexFloat `json:"longitude"`
}

type issResponse struct {
	Message  string       `json:"message"`
	Position *issPosition `json:"iss_position"`
}

// Fetch performs one GET against the position endpoint and returns the
// decoded satellite coordinate. Failures are reported as *TransportError or
// *DecodeError; both are recoverable by polling again later.
func (c *Client) Fetch(ctx context.Context) (models.Coordinate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return models.Coordinate{}, &TransportError{Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Coordinate{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinate{}, &TransportError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return models.Coordinate{}, &TransportError{Err: err}
	}

	var decoded issResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return models.Coordinate{}, &DecodeError{Reason: "malformed body", Err: err}
	}
	if decoded.Position == nil {
		return models.Coordinate{}, &DecodeError{Reason: "missing iss_position object"}
	}
	if !decoded.Position.Latitude.set || !decoded.Position.Longitude.set {
		return models.Coordinate{}, &DecodeError{Reason: "missing latitude/longitude fields"}
	}

	coord := models.Coordinate{
		Latitude:  decoded.Position.Latitude.value,
		Longitude: decoded.Position.Longitude.value,
	}
	if !coord.Valid() {
		return models.Coordinate{}, &DecodeError{Reason: fmt.Sprintf("coordinate out of range: %s", coord)}
	}
	return coord, nil
}
