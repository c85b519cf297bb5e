package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/admingate/core/logger"
)

// maxGenerateAttempts bounds retries when a generated id is already in the table.
const maxGenerateAttempts = 3

// Manager keeps the set of valid sessions in process memory, keyed by opaque id,
// with a fixed expiry measured from creation. Safe for concurrent use.
//
// Expired sessions are removed lazily on access, on every Create, and by the
// optional janitor started with Run.
type Manager struct {
	mu       sync.Mutex
	sessions map[tokenKey]Session
	ttl      time.Duration
	now      func() time.Time
	generate func() string
	logger   *slog.Logger
}

// New creates a Manager with an empty table.
func New(opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[tokenKey]Session),
		ttl:      DefaultTTL,
		now:      time.Now,
		generate: generateToken,
		logger:   discardLogger(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Create mints a new session and returns its id.
// The caller must have verified the credential already.
// Every call also sweeps expired sessions out of the table.
func (m *Manager) Create() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	var id string
	for attempt := 0; ; attempt++ {
		if attempt == maxGenerateAttempts {
			panic("session: id generator keeps returning ids that are already in use")
		}
		id = m.generate()
		if _, exists := m.sessions[keyOf(id)]; !exists {
			break
		}
	}

	m.sessions[keyOf(id)] = Session{ID: id, CreatedAt: now}
	m.sweepLocked(now)

	return id
}

// Get returns the session for id.
// Returns ErrNotFound for unknown ids and ErrExpired for sessions older than the TTL;
// expired sessions are deleted before returning.
func (m *Manager) Get(id string) (Session, error) {
	if id == "" {
		return Session{}, ErrNotFound
	}

	key := keyOf(id)

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[key]
	if !ok {
		return Session{}, ErrNotFound
	}

	if sess.expired(m.now(), m.ttl) {
		delete(m.sessions, key)
		return Session{}, ErrExpired
	}

	return sess, nil
}

// Validate reports whether id names a live session.
// Any input is accepted, including forged or empty ids.
func (m *Manager) Validate(id string) bool {
	_, err := m.Get(id)
	return err == nil
}

// Delete removes the session. Unknown ids are ignored.
func (m *Manager) Delete(id string) {
	key := keyOf(id)

	m.mu.Lock()
	delete(m.sessions, key)
	m.mu.Unlock()
}

// SweepExpired removes every session older than the TTL and returns the count removed.
func (m *Manager) SweepExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sweepLocked(m.now())
}

func (m *Manager) sweepLocked(now time.Time) int {
	removed := 0
	for key, sess := range m.sessions {
		if sess.expired(now, m.ttl) {
			delete(m.sessions, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of sessions currently held, including expired ones not yet swept.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Clear drops every session. All outstanding ids become invalid.
func (m *Manager) Clear() {
	m.mu.Lock()
	clear(m.sessions)
	m.mu.Unlock()
}

// TTL returns the session time-to-live.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Run returns an errgroup-compatible function that sweeps expired sessions every interval
// until ctx is cancelled. With a non-positive interval it only waits for ctx.
func (m *Manager) Run(ctx context.Context, interval time.Duration) func() error {
	return func() error {
		if interval <= 0 {
			<-ctx.Done()
			return nil
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		m.logger.InfoContext(ctx, "session janitor started",
			logger.Component("session"),
			slog.Duration("interval", interval),
		)

		for {
			select {
			case <-ctx.Done():
				m.logger.InfoContext(ctx, "session janitor stopped", logger.Component("session"))
				return nil
			case <-ticker.C:
				if removed := m.SweepExpired(); removed > 0 {
					m.logger.DebugContext(ctx, "expired sessions swept",
						logger.Component("session"),
						logger.Count("removed", removed),
					)
				}
			}
		}
	}
}
