package newsletter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientSubscribeSuccess(t *testing.T) {
	var gotEmail string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/subscribe" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Email string `json:"email"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotEmail = req.Email
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Subscription successful!","id":"em_1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.Subscribe(context.Background(), "user@example.com"); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if gotEmail != "user@example.com" {
		t.Errorf("server saw email %q", gotEmail)
	}
}

func TestClientSubscribeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid email address"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Subscribe(context.Background(), "user@example.com")
	if err == nil || err.Error() != "Invalid email address" {
		t.Errorf("err = %v, want server payload message", err)
	}
}

func TestClientSubscribeFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Subscribe(context.Background(), "user@example.com")
	if err == nil || err.Error() != GenericFailure {
		t.Errorf("err = %v, want %q", err, GenericFailure)
	}
}

func TestClientSubscribeTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	err := NewClient(srv.URL).Subscribe(context.Background(), "user@example.com")
	if err == nil || err.Error() != GenericFailure {
		t.Errorf("err = %v, want %q", err, GenericFailure)
	}
}
