package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Client is the Subscriber implementation that talks to the TravelEase
// subscribe endpoint.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client for the API at baseURL (no trailing slash).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Subscribe posts the email to POST {base}/api/subscribe. A non-2xx response
// yields an error carrying the server's "error" payload field when present,
// otherwise the generic fallback. Transport failures also map to the generic
// fallback; the wire-level cause is not something the form can show.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	body, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return fmt.Errorf("newsletter: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/subscribe", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("newsletter: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.New(GenericFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
		return errors.New(GenericFailure)
	}
	return errors.New(payload.Error)
}
