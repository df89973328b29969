// Package session keeps per-visitor planning state in memory. A session is
// the server-side home of what the site keeps in one browser tab: an
// itinerary, a moodboard canvas, and a packing checklist. Nothing is
// persisted; sessions disappear on restart and are swept after sitting idle.
package session

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skovand/travelease/internal/models"
	"github.com/skovand/travelease/internal/moodboard"
	"github.com/skovand/travelease/internal/packing"
	"github.com/skovand/travelease/internal/planner"
)

// DefaultCanvas is the moodboard extent used until the client reports its own.
var DefaultCanvas = moodboard.Bounds{Width: 800, Height: 600}

// Session is one visitor's planning state. All access goes through Update /
// View, which hold the session's lock: state is single-owner and edits apply
// in request order.
type Session struct {
	ID        string
	Itinerary *planner.Itinerary
	Board     *moodboard.Board
	Checklist *packing.Checklist

	mu       sync.Mutex
	lastSeen time.Time
	now      func() time.Time
}

// Update runs fn with exclusive access to the session state.
func (s *Session) Update(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
	fn(s)
}

// View runs fn with exclusive access without counting as activity.
func (s *Session) View(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// Store holds all live sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	packSeed func() []models.PackingItem
	now      func() time.Time
}

// NewStore creates an empty store. packSeed supplies a fresh packing list for
// each new session.
func NewStore(packSeed func() []models.PackingItem) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		packSeed: packSeed,
		now:      time.Now,
	}
}

// New creates a session with the given trip parameters and an empty canvas.
func (st *Store) New(destination string, tripDate time.Time, durationDays int) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Itinerary: planner.New(destination, tripDate, durationDays),
		Board:     moodboard.New(DefaultCanvas, rand.New(rand.NewSource(st.now().UnixNano()))),
		Checklist: packing.New(st.packSeed()),
		lastSeen:  st.now(),
		now:       st.now,
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session with the given id, or false if it does not exist.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many
// were removed.
func (st *Store) Sweep(maxIdle time.Duration) int {
	cutoff := st.now().Add(-maxIdle)

	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
