// Package session keeps in-flight workflow instances in memory. Each
// session is owned by one anonymous visitor, addressed by an opaque id, and
// expires after a period of inactivity.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/shag-platform/shag-api/internal/workflow"
	apperrors "github.com/shag-platform/shag-api/pkg/errors"
	"github.com/shag-platform/shag-api/pkg/metrics"
)

// BookingSession wraps one booking workflow with a lock. Workflow state
// machines are not safe for concurrent use, so every access goes through
// WithLock.
type BookingSession struct {
	ID string

	mu      sync.Mutex
	booking *workflow.Booking
}

// WithLock runs fn with exclusive access to the booking.
func (s *BookingSession) WithLock(fn func(*workflow.Booking) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.booking)
}

// RegistrationSession wraps one registration workflow with a lock.
type RegistrationSession struct {
	ID string

	mu           sync.Mutex
	registration *workflow.Registration
}

// WithLock runs fn with exclusive access to the registration.
func (s *RegistrationSession) WithLock(fn func(*workflow.Registration) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.registration)
}

// matchState tracks the newest recommendation request per visitor session
// so that a stale response arriving late cannot overwrite a newer one.
type matchState struct {
	mu     sync.Mutex
	latest uint64
}

// Store holds all live sessions. Expiry is sliding: every successful lookup
// renews the TTL.
type Store struct {
	ttl           time.Duration
	bookings      *cache.Cache
	registrations *cache.Cache
	matches       *cache.Cache
}

// NewStore creates a session store with the given inactivity TTL.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		ttl:           ttl,
		bookings:      cache.New(ttl, ttl/2),
		registrations: cache.New(ttl, ttl/2),
		matches:       cache.New(ttl, ttl/2),
	}
	s.bookings.OnEvicted(func(string, interface{}) {
		metrics.ActiveSessions.WithLabelValues("booking").Dec()
	})
	s.registrations.OnEvicted(func(string, interface{}) {
		metrics.ActiveSessions.WithLabelValues("registration").Dec()
	})
	return s
}

// CreateBooking stores a fresh booking workflow and returns its session.
func (s *Store) CreateBooking(b *workflow.Booking) *BookingSession {
	sess := &BookingSession{
		ID:      uuid.NewString(),
		booking: b,
	}
	s.bookings.Set(sess.ID, sess, s.ttl)
	metrics.ActiveSessions.WithLabelValues("booking").Inc()
	return sess
}

// GetBooking looks up a booking session and renews its TTL.
func (s *Store) GetBooking(id string) (*BookingSession, error) {
	v, ok := s.bookings.Get(id)
	if !ok {
		return nil, apperrors.NotFoundError("booking session " + id)
	}
	s.bookings.Set(id, v, s.ttl)
	return v.(*BookingSession), nil
}

// DeleteBooking discards a booking session.
func (s *Store) DeleteBooking(id string) {
	s.bookings.Delete(id)
}

// CreateRegistration stores a fresh registration workflow and returns its
// session.
func (s *Store) CreateRegistration(r *workflow.Registration) *RegistrationSession {
	sess := &RegistrationSession{
		ID:           uuid.NewString(),
		registration: r,
	}
	s.registrations.Set(sess.ID, sess, s.ttl)
	metrics.ActiveSessions.WithLabelValues("registration").Inc()
	return sess
}

// GetRegistration looks up a registration session and renews its TTL.
func (s *Store) GetRegistration(id string) (*RegistrationSession, error) {
	v, ok := s.registrations.Get(id)
	if !ok {
		return nil, apperrors.NotFoundError("registration session " + id)
	}
	s.registrations.Set(id, v, s.ttl)
	return v.(*RegistrationSession), nil
}

// DeleteRegistration discards a registration session.
func (s *Store) DeleteRegistration(id string) {
	s.registrations.Delete(id)
}

// BeginMatch registers a new recommendation request for the visitor session
// and returns its generation number. Each new request supersedes the
// previous one.
func (s *Store) BeginMatch(sessionID string) uint64 {
	state := s.matchStateFor(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()
	state.latest++
	return state.latest
}

// CommitMatch reports whether the request with the given generation is
// still the newest one. A false return means the result is stale and must
// be dropped.
func (s *Store) CommitMatch(sessionID string, generation uint64) bool {
	state := s.matchStateFor(sessionID)
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.latest == generation
}

func (s *Store) matchStateFor(sessionID string) *matchState {
	if v, ok := s.matches.Get(sessionID); ok {
		s.matches.Set(sessionID, v, s.ttl)
		return v.(*matchState)
	}
	state := &matchState{}
	if err := s.matches.Add(sessionID, state, s.ttl); err != nil {
		// lost a creation race, use the winner
		v, _ := s.matches.Get(sessionID)
		if existing, ok := v.(*matchState); ok {
			return existing
		}
	}
	return state
}
