package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production Resend API endpoint. Tests point BaseURL
// at an httptest server instead.
const DefaultBaseURL = "https://api.resend.com"

// Resend sends email through the Resend HTTP API.
type Resend struct {
	baseURL string
	apiKey  string
	appURL  string
	httpc   *http.Client
}

// NewResend builds a Resend sender. appURL is the public site origin used for
// links and images inside the email body.
func NewResend(baseURL, apiKey, appURL string) *Resend {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Resend{
		baseURL: baseURL,
		apiKey:  apiKey,
		appURL:  appURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendWelcome renders the welcome template and posts it to POST /emails.
func (r *Resend) SendWelcome(ctx context.Context, email string) (string, error) {
	html, err := renderWelcome(r.appURL, email)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(sendRequest{
		From:    welcomeFrom,
		To:      email,
		Subject: welcomeSubject,
		HTML:    html,
	})
	if err != nil {
		return "", fmt.Errorf("mailer: encode send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("mailer: build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("mailer: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("mailer: send failed with status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var payload struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("mailer: decode send response: %w", err)
	}
	return payload.ID, nil
}
