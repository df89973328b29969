package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/skovand/travelease/internal/catalog"
	"github.com/skovand/travelease/internal/mailer"
	"github.com/skovand/travelease/internal/session"
	"github.com/skovand/travelease/internal/sse"
)

// NewRouter creates a chi router with all API routes mounted.
// broker, if non-nil, is mounted at GET /events and receives
// session mutation events.
func NewRouter(cat *catalog.Catalog, sessions *session.Store, mail mailer.Sender, broker *sse.Broker) chi.Router {
	h := NewHandler(cat, sessions, mail, broker)

	r := chi.NewRouter()

	// Catalog.
	r.Get("/destinations", h.ListDestinations)
	r.Get("/destinations/{id}", h.GetDestination)
	r.Get("/tips", h.ListTips)
	r.Get("/stickers", h.ListStickers)
	r.Get("/inspiration", h.Inspiration)

	// Newsletter.
	r.Post("/subscribe", h.Subscribe)

	// Planning sessions.
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.CreateSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Put("/trip", h.UpdateTrip)
			r.Put("/active-day", h.SetActiveDay)
			r.Put("/notes", h.UpdateNotes)

			r.Post("/activities", h.AddActivity)
			r.Patch("/activities/{activityID}", h.PatchActivity)
			r.Delete("/activities/{activityID}", h.DeleteActivity)

			r.Post("/stickers", h.PlaceSticker)
			r.Patch("/stickers/{stickerID}", h.PatchSticker)
			r.Delete("/stickers/{stickerID}", h.RemoveSticker)
			r.Delete("/stickers", h.ClearStickers)

			r.Post("/packing/{itemID}/toggle", h.TogglePacking)
			r.Get("/packing/summary", h.PackingSummary)

			r.Get("/countdown", h.Countdown)
		})
	})

	// SSE event feed.
	if broker != nil {
		r.Get("/events", broker.ServeHTTP)
	}

	return r
}
