package sse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker()
	defer b.Close()
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}
	b.Unsubscribe(ch)
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unsub")
	}
}

func TestPublishSessionEvent(t *testing.T) {
	b := NewBroker()
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishSessionEvent(KindActivityChanged, "sess-1")

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: activities.changed") {
			t.Errorf("missing event type in %q", s)
		}
		if !strings.Contains(s, `"session_id":"sess-1"`) {
			t.Errorf("missing data in %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestCloseIdempotentAndTerminal(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	b.Close()
	b.Close()

	if _, ok := <-ch; ok {
		t.Error("client channel still open after Close")
	}
	if got := b.Subscribe(); got == nil {
		t.Fatal("Subscribe after Close returned nil")
	} else if _, ok := <-got; ok {
		t.Error("post-Close Subscribe returned open channel")
	}
	b.PublishSessionEvent(KindTripUpdated, "s1") // must not panic or block
}

func TestServeHTTPDeliversEvents(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	srv := httptest.NewServer(http.HandlerFunc(b.ServeHTTP))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type = %q", ct)
	}

	// Wait for the subscription to register before publishing.
	deadline := time.Now().Add(time.Second)
	for b.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	b.PublishSessionEvent(KindTripUpdated, "sess-2")

	buf := make([]byte, 256)
	n, err := resp.Body.Read(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(buf[:n]), "trip.updated") {
		t.Errorf("stream = %q", buf[:n])
	}
}

func TestStreamCountdownEmitsImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/countdown", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		StreamCountdown(w, req, time.Now().Add(48*time.Hour))
		close(done)
	}()

	// The first event is written before the ticker starts; cancel shortly
	// after and inspect the recorder only once the handler has returned.
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	body := w.Body.String()
	if !strings.Contains(body, "event: countdown") {
		t.Fatalf("no countdown event in %q", body)
	}
	if !strings.Contains(body, `"days":`) {
		t.Errorf("payload missing breakdown: %q", body)
	}
}
