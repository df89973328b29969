package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skovand/travelease/internal/apperr"
	"github.com/skovand/travelease/internal/catalog"
	"github.com/skovand/travelease/internal/mailer"
	"github.com/skovand/travelease/internal/models"
	"github.com/skovand/travelease/internal/session"
	"github.com/skovand/travelease/internal/sse"
)

// serverEmailPattern is the address check applied before a welcome email is
// dispatched. It is loose on purpose: the mail provider is the authority on
// deliverability, this only rejects obvious junk.
var serverEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// initialQuoteCount is how many quotes the inspiration section shows before
// the first "load more".
const initialQuoteCount = 3

// Handler holds API route handlers.
type Handler struct {
	cat      *catalog.Catalog
	sessions *session.Store
	mail     mailer.Sender
	broker   *sse.Broker
}

// NewHandler creates a new Handler. broker may be nil, in which case
// mutation events are not published.
func NewHandler(cat *catalog.Catalog, sessions *session.Store, mail mailer.Sender, broker *sse.Broker) *Handler {
	return &Handler{cat: cat, sessions: sessions, mail: mail, broker: broker}
}

func (h *Handler) publish(kind, sessionID string) {
	if h.broker != nil {
		h.broker.PublishSessionEvent(kind, sessionID)
	}
}

// decode unmarshals the request body into dst, answering 400 on bad JSON.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// ListDestinations handles GET /api/destinations.
//
//	@Summary		List featured destinations, optionally filtered by region
//	@Tags			catalog
//	@Produce		json
//	@Param			region	query		string	false	"Region filter"	Enums(all, europe, asia, americas)
//	@Success		200		{object}	DestinationListResponse
//	@Router			/destinations [get]
func (h *Handler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	items := h.cat.Destinations(r.URL.Query().Get("region"))
	writeJSON(w, http.StatusOK, DestinationListResponse{
		Destinations: items,
		Total:        len(items),
	})
}

// GetDestination handles GET /api/destinations/{id}.
//
//	@Summary		Get a single destination by id
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		string	true	"Destination id"
//	@Success		200	{object}	models.Destination
//	@Failure		404	{object}	errResponse
//	@Router			/destinations/{id} [get]
func (h *Handler) GetDestination(w http.ResponseWriter, r *http.Request) {
	dest, err := h.cat.Destination(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeError(w, http.StatusNotFound, "destination not found")
			return
		}
		slog.Error("get destination failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, dest)
}

// ListTips handles GET /api/tips.
//
//	@Summary		List travel tips, optionally filtered by category
//	@Tags			catalog
//	@Produce		json
//	@Param			category	query		string	false	"Category filter"
//	@Success		200			{object}	TipListResponse
//	@Router			/tips [get]
func (h *Handler) ListTips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TipListResponse{
		Tips:       h.cat.Tips(r.URL.Query().Get("category")),
		Categories: h.cat.TipCategories(),
	})
}

// ListStickers handles GET /api/stickers.
//
//	@Summary		List the sticker palette for a time of day
//	@Tags			catalog
//	@Produce		json
//	@Param			time	query		string	false	"Time of day"	Enums(morning, afternoon, evening, night, anytime)
//	@Success		200		{object}	StickerListResponse
//	@Failure		400		{object}	errResponse
//	@Router			/stickers [get]
func (h *Handler) ListStickers(w http.ResponseWriter, r *http.Request) {
	tod := models.TimeOfDay(r.URL.Query().Get("time"))
	if tod == "" {
		tod = models.TimeAnytime
	}
	if !tod.Valid() {
		writeError(w, http.StatusBadRequest, "unknown time of day")
		return
	}
	writeJSON(w, http.StatusOK, StickerListResponse{Stickers: h.cat.StickersForTime(tod)})
}

// Inspiration handles GET /api/inspiration.
//
//	@Summary		Get the inspiration section: featured cards, categories, quotes
//	@Tags			catalog
//	@Produce		json
//	@Param			quotes	query		int	false	"How many quotes to include (3 initially, +3 per load)"
//	@Success		200		{object}	InspirationResponse
//	@Router			/inspiration [get]
func (h *Handler) Inspiration(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("quotes"))
	if limit == 0 {
		limit = initialQuoteCount
	}
	writeJSON(w, http.StatusOK, InspirationResponse{
		Featured:    h.cat.Featured(),
		Categories:  h.cat.TravelCategories(),
		Quotes:      h.cat.Quotes(limit),
		TotalQuotes: h.cat.QuoteCount(),
	})
}

// Subscribe handles POST /api/subscribe.
//
//	@Summary		Subscribe an email address to the newsletter
//	@Tags			newsletter
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SubscribeRequest	true	"Subscription request"
//	@Success		200		{object}	SubscribeResponse
//	@Failure		400		{object}	errResponse
//	@Failure		500		{object}	errResponse
//	@Router			/subscribe [post]
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("subscribe body decode failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if req.Email == "" || !serverEmailPattern.MatchString(req.Email) {
		writeError(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	id, err := h.mail.SendWelcome(r.Context(), req.Email)
	if err != nil {
		slog.Error("welcome email failed",
			slog.String("email", req.Email),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to send welcome email")
		return
	}

	slog.Info("newsletter subscription", slog.String("email", req.Email), slog.String("id", id))
	writeJSON(w, http.StatusOK, SubscribeResponse{
		Success: true,
		Message: "Subscription successful!",
		ID:      id,
	})
}
