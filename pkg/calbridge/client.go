// Package calbridge provides the HTTP client for the local calendar bridge,
// a JSON service fronting the OS calendar. Retry policy lives in the event
// creator, not here — this client does a single attempt per call and
// classifies failures so the caller can decide.
package calbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// requestTimeout bounds status, add, and delete calls.
	requestTimeout = 10 * time.Second
	// fetchTimeout bounds event listing, which can span a year of events.
	fetchTimeout = 20 * time.Second
	// MaxFetchDays is the bridge's hard cap on the events query horizon.
	MaxFetchDays = 365
)

// StatusError reports a non-2xx bridge response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("calendar bridge returned %d: %s", e.Code, e.Body)
}

// IsTransient reports whether err is worth retrying: transport failures and
// 5xx responses. 4xx responses are permanent.
func IsTransient(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 500
	}
	// Transport-level failure (connection refused, timeout, reset).
	return err != nil
}

// IsNotFound reports whether err is a bridge 404. Deletes treat this as
// "already deleted".
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Client is the calendar bridge HTTP client.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a bridge client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		// Per-call deadlines come from contexts; keep a generous transport cap.
		http: &http.Client{Timeout: fetchTimeout + 5*time.Second},
	}
}

// Status reports bridge authorization state.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	var status Status
	if err := c.getJSON(ctx, "/status", nil, requestTimeout, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Calendars lists all calendars visible through the bridge.
func (c *Client) Calendars(ctx context.Context) ([]Calendar, error) {
	var calendars []Calendar
	if err := c.getJSON(ctx, "/calendars", nil, requestTimeout, &calendars); err != nil {
		return nil, err
	}
	return calendars, nil
}

// Events fetches events for the next days on the given calendar. The bridge
// caps days at MaxFetchDays; values outside [1, MaxFetchDays] are clamped.
func (c *Client) Events(ctx context.Context, days int, calendarID string) ([]Event, error) {
	if days < 1 {
		days = 1
	}
	if days > MaxFetchDays {
		days = MaxFetchDays
	}
	params := url.Values{}
	params.Set("days", strconv.Itoa(days))
	if calendarID != "" {
		params.Set("calendar_id", calendarID)
	}

	var events []Event
	if err := c.getJSON(ctx, "/events", params, fetchTimeout, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// AddEvent creates one event and returns the bridge's view of it, including
// the assigned event ID.
func (c *Client) AddEvent(ctx context.Context, req AddEventRequest) (*Event, error) {
	var event Event
	if err := c.postJSON(ctx, "/add", nil, req, &event); err != nil {
		return nil, err
	}
	if event.ID == "" {
		return nil, errors.New("calendar bridge did not return an event ID")
	}
	return &event, nil
}

// DeleteEvent removes an event by bridge event ID. A 404 surfaces as a
// StatusError for which IsNotFound is true.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) (*DeleteResponse, error) {
	params := url.Values{}
	params.Set("event_id", eventID)

	var deleted DeleteResponse
	if err := c.postJSON(ctx, "/delete", params, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, timeout time.Duration, target any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, params), nil)
	if err != nil {
		return fmt.Errorf("failed to build bridge request: %w", err)
	}
	return c.do(req, target)
}

func (c *Client) postJSON(ctx context.Context, path string, params url.Values, body, target any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode bridge request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, params), reader)
	if err != nil {
		return fmt.Errorf("failed to build bridge request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, target)
}

func (c *Client) endpoint(path string, params url.Values) string {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *Client) do(req *http.Request, target any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calendar bridge request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: string(payload)}
	}

	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode bridge response: %w", err)
	}
	return nil
}
