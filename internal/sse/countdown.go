package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/skovand/travelease/internal/countdown"
)

// StreamCountdown writes one "countdown" event immediately and then once per
// second until the request context is cancelled. The ticker lives no longer
// than the connection, so a departed client leaks nothing.
func StreamCountdown(w http.ResponseWriter, r *http.Request, target time.Time) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	write := func() {
		payload, err := json.Marshal(countdown.Remaining(target, time.Now()))
		if err != nil {
			return
		}
		_, _ = fmt.Fprintf(w, "event: countdown\ndata: %s\n\n", payload)
		flusher.Flush()
	}

	write()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			write()
		}
	}
}
