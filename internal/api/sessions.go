package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/skovand/travelease/internal/apperr"
	"github.com/skovand/travelease/internal/models"
	"github.com/skovand/travelease/internal/moodboard"
	"github.com/skovand/travelease/internal/session"
	"github.com/skovand/travelease/internal/sse"
)

// Starter trip shown before the visitor edits anything.
const (
	defaultDestination  = "Santorini, Greece"
	defaultLeadDays     = 15
	defaultDurationDays = 7
)

const dateLayout = "2006-01-02"

// sessionFrom resolves the {sessionID} route param, answering 404 when the
// session does not exist or has been swept.
func (h *Handler) sessionFrom(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, ok := h.sessions.Get(chi.URLParam(r, "sessionID"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return s, true
}

// snapshot builds the full session response. Callers must hold the session
// lock (i.e. call it inside Update or View).
func snapshot(s *session.Session) SessionResponse {
	essential, optional := s.Checklist.Partition()
	bounds := s.Board.Bounds()
	return SessionResponse{
		ID:           s.ID,
		Destination:  s.Itinerary.Destination(),
		TripDate:     s.Itinerary.TripDate().Format(dateLayout),
		DurationDays: s.Itinerary.Duration(),
		ActiveDay:    s.Itinerary.ActiveDay(),
		Days:         s.Itinerary.Days(),
		Stickers:     s.Board.Placed(),
		Canvas:       CanvasDTO{Width: bounds.Width, Height: bounds.Height},
		Packing: PackingResponse{
			Essential: essential,
			Optional:  optional,
			Summary:   s.Checklist.Summary(),
		},
	}
}

// CreateSession handles POST /api/sessions.
//
//	@Summary		Start a planning session
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateSessionRequest	false	"Trip overrides"
//	@Success		201		{object}	SessionResponse
//	@Failure		400		{object}	errResponse
//	@Router			/sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dest := req.Destination
	if dest == "" {
		dest = defaultDestination
	}
	tripDate := time.Now().AddDate(0, 0, defaultLeadDays)
	if req.StartDate != "" {
		tripDate, _ = time.Parse(dateLayout, req.StartDate)
	}
	duration := req.DurationDays
	if duration == 0 {
		duration = defaultDurationDays
	}

	s := h.sessions.New(dest, tripDate, duration)
	var resp SessionResponse
	s.View(func(s *session.Session) { resp = snapshot(s) })
	writeJSON(w, http.StatusCreated, resp)
}

// GetSession handles GET /api/sessions/{sessionID}.
//
//	@Summary		Get the full state of a planning session
//	@Tags			sessions
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session id"
//	@Success		200			{object}	SessionResponse
//	@Failure		404			{object}	errResponse
//	@Router			/sessions/{sessionID} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	var resp SessionResponse
	s.View(func(s *session.Session) { resp = snapshot(s) })
	writeJSON(w, http.StatusOK, resp)
}

// UpdateTrip handles PUT /api/sessions/{sessionID}/trip. Changing the trip
// header rebuilds the itinerary days and resets the active day.
//
//	@Summary		Update the trip header and regenerate the itinerary
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string				true	"Session id"
//	@Param			body		body		UpdateTripRequest	true	"Trip fields"
//	@Success		200			{object}	SessionResponse
//	@Failure		400			{object}	errResponse
//	@Failure		404			{object}	errResponse
//	@Router			/sessions/{sessionID}/trip [put]
func (h *Handler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	var req UpdateTripRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var resp SessionResponse
	s.Update(func(s *session.Session) {
		dest := req.Destination
		if dest == "" {
			dest = s.Itinerary.Destination()
		}
		tripDate := s.Itinerary.TripDate()
		if req.StartDate != "" {
			tripDate, _ = time.Parse(dateLayout, req.StartDate)
		}
		duration := req.DurationDays
		if duration == 0 {
			duration = s.Itinerary.Duration()
		}
		s.Itinerary.Regenerate(dest, tripDate, duration)
		resp = snapshot(s)
	})
	h.publish(sse.KindTripUpdated, s.ID)
	writeJSON(w, http.StatusOK, resp)
}

// SetActiveDay handles PUT /api/sessions/{sessionID}/active-day.
// Out-of-range indexes are ignored.
//
//	@Summary		Select the itinerary day being edited
//	@Tags			sessions
//	@Accept			json
//	@Param			sessionID	path	string				true	"Session id"
//	@Param			body		body	ActiveDayRequest	true	"Day index"
//	@Success		204
//	@Failure		404	{object}	errResponse
//	@Router			/sessions/{sessionID}/active-day [put]
func (h *Handler) SetActiveDay(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	var req ActiveDayRequest
	if !decode(w, r, &req) {
		return
	}
	s.Update(func(s *session.Session) { s.Itinerary.SetActiveDay(req.Index) })
	w.WriteHeader(http.StatusNoContent)
}

// UpdateNotes handles PUT /api/sessions/{sessionID}/notes. Notes always
// target the active day.
//
//	@Summary		Replace the notes of the active day
//	@Tags			sessions
//	@Accept			json
//	@Param			sessionID	path	string			true	"Session id"
//	@Param			body		body	NotesRequest	true	"Notes text"
//	@Success		204
//	@Failure		404	{object}	errResponse
//	@Router			/sessions/{sessionID}/notes [put]
func (h *Handler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	var req NotesRequest
	if !decode(w, r, &req) {
		return
	}
	s.Update(func(s *session.Session) { s.Itinerary.UpdateNotes(req.Notes) })
	h.publish(sse.KindTripUpdated, s.ID)
	w.WriteHeader(http.StatusNoContent)
}

// AddActivity handles POST /api/sessions/{sessionID}/activities. The new
// activity is created with placeholder fields on the active day.
//
//	@Summary		Add a placeholder activity to the active day
//	@Tags			sessions
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session id"
//	@Success		201			{object}	models.Activity
//	@Failure		404			{object}	errResponse
//	@Router			/sessions/{sessionID}/activities [post]
func (h *Handler) AddActivity(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	var act models.Activity
	s.Update(func(s *session.Session) { act = s.Itinerary.AddActivity() })
	h.publish(sse.KindActivityChanged, s.ID)
	writeJSON(w, http.StatusCreated, act)
}

// PatchActivity handles PATCH /api/sessions/{sessionID}/activities/{activityID}.
// Edits apply only when the activity lives on the active day; a miss is a
// silent no-op.
//
//	@Summary		Edit fields of an activity on the active day
//	@Tags			sessions
//	@Accept			json
//	@Param			sessionID	path	string					true	"Session id"
//	@Param			activityID	path	string					true	"Activity id"
//	@Param			body		body	ActivityPatchRequest	true	"Fields to change"
//	@Success		204
//	@Failure		400	{object}	errResponse
//	@Failure		404	{object}	errResponse
//	@Router			/sessions/{sessionID}/activities/{activityID} [patch]
func (h *Handler) PatchActivity(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	var req ActivityPatchRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	id := chi.URLParam(r, "activityID")
	s.Update(func(s *session.Session) { s.Itinerary.UpdateActivity(id, req.patch()) })
	h.publish(sse.KindActivityChanged, s.ID)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteActivity handles DELETE /api/sessions/{sessionID}/activities/{activityID}.
//
//	@Summary		Remove an activity from the active day
//	@Tags			sessions
//	@Param			sessionID	path	string	true	"Session id"
//	@Param			activityID	path	string	true	"Activity id"
//	@Success		204
//	@Failure		404	{object}	errResponse
//	@Router			/sessions/{sessionID}/activities/{activityID} [delete]
func (h *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "activityID")
	s.Update(func(s *session.Session) { s.Itinerary.DeleteActivity(id) })
	h.publish(sse.KindActivityChanged, s.ID)
	w.WriteHeader(http.StatusNoContent)
}

// PlaceSticker handles POST /api/sessions/{sessionID}/stickers. The sticker
// lands at a random spot within the canvas with a random tilt.
//
//	@Summary		Place a palette sticker on the moodboard
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string				true	"Session id"
//	@Param			body		body		PlaceStickerRequest	true	"Sticker and canvas"
//	@Success		201			{object}	models.PlacedSticker
//	@Failure		400			{object}	errResponse
//	@Failure		404			{object}	errResponse
//	@Router			/sessions/{sessionID}/stickers [post]
func (h *Handler) PlaceSticker(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	var req PlaceStickerRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	template, err := h.cat.StickerByID(req.StickerID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeError(w, http.StatusNotFound, "sticker not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	var placed models.PlacedSticker
	s.Update(func(s *session.Session) {
		if req.Canvas != nil {
			s.Board.Resize(moodboard.Bounds{Width: req.Canvas.Width, Height: req.Canvas.Height})
		}
		placed = s.Board.Place(template)
	})
	h.publish(sse.KindBoardChanged, s.ID)
	writeJSON(w, http.StatusCreated, placed)
}

// PatchSticker handles PATCH /api/sessions/{sessionID}/stickers/{stickerID}.
// Unknown sticker ids are a silent no-op.
//
//	@Summary		Move, rotate or rescale a placed sticker
//	@Tags			sessions
//	@Accept			json
//	@Param			sessionID	path	string				true	"Session id"
//	@Param			stickerID	path	string				true	"Placed sticker id"
//	@Param			body		body	StickerOpRequest	true	"Adjustment"
//	@Success		204
//	@Failure		400	{object}	errResponse
//	@Failure		404	{object}	errResponse
//	@Router			/sessions/{sessionID}/stickers/{stickerID} [patch]
func (h *Handler) PatchSticker(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	var req StickerOpRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	id := chi.URLParam(r, "stickerID")
	s.Update(func(s *session.Session) {
		switch req.Op {
		case "move":
			s.Board.Move(id, *req.X, *req.Y)
		case "rotate":
			s.Board.Rotate(id, req.direction())
		case "rescale":
			s.Board.Rescale(id, req.direction())
		}
	})
	h.publish(sse.KindBoardChanged, s.ID)
	w.WriteHeader(http.StatusNoContent)
}

// RemoveSticker handles DELETE /api/sessions/{sessionID}/stickers/{stickerID}.
//
//	@Summary		Remove a placed sticker from the moodboard
//	@Tags			sessions
//	@Param			sessionID	path	string	true	"Session id"
//	@Param			stickerID	path	string	true	"Placed sticker id"
//	@Success		204
//	@Failure		404	{object}	errResponse
//	@Router			/sessions/{sessionID}/stickers/{stickerID} [delete]
func (h *Handler) RemoveSticker(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "stickerID")
	s.Update(func(s *session.Session) { s.Board.Remove(id) })
	h.publish(sse.KindBoardChanged, s.ID)
	w.WriteHeader(http.StatusNoContent)
}

// ClearStickers handles DELETE /api/sessions/{sessionID}/stickers.
//
//	@Summary		Clear the moodboard
//	@Tags			sessions
//	@Param			sessionID	path	string	true	"Session id"
//	@Success		204
//	@Failure		404	{object}	errResponse
//	@Router			/sessions/{sessionID}/stickers [delete]
func (h *Handler) ClearStickers(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	s.Update(func(s *session.Session) { s.Board.ClearAll() })
	h.publish(sse.KindBoardChanged, s.ID)
	w.WriteHeader(http.StatusNoContent)
}

// TogglePacking handles POST /api/sessions/{sessionID}/packing/{itemID}/toggle.
// Unknown item ids are a silent no-op; the current packing state is returned
// either way.
//
//	@Summary		Toggle the packed state of a checklist item
//	@Tags			sessions
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session id"
//	@Param			itemID		path		string	true	"Checklist item id"
//	@Success		200			{object}	PackingResponse
//	@Failure		404			{object}	errResponse
//	@Router			/sessions/{sessionID}/packing/{itemID}/toggle [post]
func (h *Handler) TogglePacking(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "itemID")
	var resp PackingResponse
	s.Update(func(s *session.Session) {
		s.Checklist.TogglePacked(id)
		essential, optional := s.Checklist.Partition()
		resp = PackingResponse{Essential: essential, Optional: optional, Summary: s.Checklist.Summary()}
	})
	h.publish(sse.KindPackingChanged, s.ID)
	writeJSON(w, http.StatusOK, resp)
}

// PackingSummary handles GET /api/sessions/{sessionID}/packing/summary.
//
//	@Summary		Get the packing completion summary
//	@Tags			sessions
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session id"
//	@Success		200			{object}	models.PackingSummary
//	@Failure		404			{object}	errResponse
//	@Router			/sessions/{sessionID}/packing/summary [get]
func (h *Handler) PackingSummary(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	var summary models.PackingSummary
	s.View(func(s *session.Session) { summary = s.Checklist.Summary() })
	writeJSON(w, http.StatusOK, summary)
}

// Countdown handles GET /api/sessions/{sessionID}/countdown. It streams the
// remaining time to the trip date as server-sent events, one tick per second,
// until the client disconnects.
//
//	@Summary		Stream the trip countdown as server-sent events
//	@Tags			sessions
//	@Produce		text/event-stream
//	@Param			sessionID	path	string	true	"Session id"
//	@Success		200
//	@Failure		404	{object}	errResponse
//	@Router			/sessions/{sessionID}/countdown [get]
func (h *Handler) Countdown(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessionFrom(w, r)
	if !ok {
		return
	}
	var target time.Time
	s.View(func(s *session.Session) { target = s.Itinerary.TripDate() })
	sse.StreamCountdown(w, r, target)
}
