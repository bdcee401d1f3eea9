// Package storage provides abstractions for holding interactive tab sessions.
package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tabcalc/internal/calculator"
	"github.com/mmynk/tabcalc/internal/models"
)

// ErrSessionNotFound is returned when a session ID is unknown or has expired.
var ErrSessionNotFound = errors.New("session not found")

// Session is one user's working tab. It owns exactly one engine, picked by
// Mode, and serializes every action on it.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// Mode selects which engine is live.
	Mode models.SplitMode

	// CreatedAt is when the session was started.
	CreatedAt time.Time

	mu           sync.Mutex
	lastActive   time.Time
	proportional *calculator.ProportionalSplit
	even         *calculator.EvenSplit
}

// NewSession creates a session with a fresh ID and an idle engine for mode.
func NewSession(mode models.SplitMode) *Session {
	now := time.Now()
	s := &Session{
		ID:         uuid.New().String(),
		Mode:       mode,
		CreatedAt:  now,
		lastActive: now,
	}
	switch mode {
	case models.SplitModeEven:
		s.even = calculator.NewEvenSplit()
	default:
		s.proportional = calculator.NewProportionalSplit()
	}
	return s
}

// Proportional runs fn against the proportional engine while holding the
// session lock. It returns false without calling fn if the session is even-split.
func (s *Session) Proportional(fn func(*calculator.ProportionalSplit)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.proportional == nil {
		return false
	}
	s.lastActive = time.Now()
	fn(s.proportional)
	return true
}

// Even runs fn against the even-split engine while holding the session lock.
// It returns false without calling fn if the session is proportional.
func (s *Session) Even(fn func(*calculator.EvenSplit)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.even == nil {
		return false
	}
	s.lastActive = time.Now()
	fn(s.even)
	return true
}

// LastActive reports when the session was last used.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Store defines the interface for session storage operations.
// Sessions are never persisted beyond the process lifetime.
type Store interface {
	// CreateSession registers a new session.
	CreateSession(ctx context.Context, session *Session) error

	// GetSession retrieves a session by its ID.
	// Returns ErrSessionNotFound if it does not exist.
	GetSession(ctx context.Context, sessionID string) (*Session, error)

	// DeleteSession removes a session.
	// Returns ErrSessionNotFound if it does not exist.
	DeleteSession(ctx context.Context, sessionID string) error

	// Sweep removes sessions idle since before cutoff and returns how many were removed.
	Sweep(ctx context.Context, cutoff time.Time) (int, error)

	// Count returns the number of live sessions.
	Count(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
