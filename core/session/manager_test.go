package session_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/admingate/core/session"
)

// fakeClock is a manually advanced clock shared between a test and the manager.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newManager(clock *fakeClock, opts ...session.Option) *session.Manager {
	return session.New(append([]session.Option{session.WithClock(clock.Now)}, opts...)...)
}

func TestManager_Create(t *testing.T) {
	t.Parallel()

	t.Run("fresh session is valid immediately", func(t *testing.T) {
		t.Parallel()

		m := newManager(newFakeClock())

		id := m.Create()

		require.NotEmpty(t, id)
		assert.True(t, m.Validate(id))
		assert.Equal(t, 1, m.Len())
	})

	t.Run("ids carry 256 bits encoded as base64url", func(t *testing.T) {
		t.Parallel()

		m := session.New()
		id := m.Create()

		assert.Len(t, id, 43)
		assert.NotContains(t, id, "=")
		assert.NotContains(t, id, "+")
		assert.NotContains(t, id, "/")
	})

	t.Run("N calls produce N distinct ids", func(t *testing.T) {
		t.Parallel()

		m := session.New()
		const n = 1000

		seen := make(map[string]struct{}, n)
		for range n {
			seen[m.Create()] = struct{}{}
		}

		assert.Len(t, seen, n)
		assert.Equal(t, n, m.Len())
	})

	t.Run("records creation time from the clock", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		m := newManager(clock)

		id := m.Create()
		sess, err := m.Get(id)

		require.NoError(t, err)
		assert.Equal(t, id, sess.ID)
		assert.Equal(t, clock.Now(), sess.CreatedAt)
		assert.Equal(t, clock.Now().Add(session.DefaultTTL), sess.ExpiresAt(m.TTL()))
	})

	t.Run("regenerates when the id is already in use", func(t *testing.T) {
		t.Parallel()

		ids := []string{"first", "first", "second"}
		var i int
		m := session.New(session.WithIDGenerator(func() string {
			id := ids[i]
			i++
			return id
		}))

		assert.Equal(t, "first", m.Create())
		assert.Equal(t, "second", m.Create())
		assert.Equal(t, 2, m.Len())
	})

	t.Run("panics when the generator only repeats itself", func(t *testing.T) {
		t.Parallel()

		m := session.New(session.WithIDGenerator(func() string { return "constant" }))
		m.Create()

		assert.Panics(t, func() { m.Create() })
	})
}

func TestManager_Validate(t *testing.T) {
	t.Parallel()

	t.Run("unknown and empty ids are invalid", func(t *testing.T) {
		t.Parallel()

		m := session.New()
		m.Create()

		assert.False(t, m.Validate(""))
		assert.False(t, m.Validate("forged-token"))
		assert.False(t, m.Validate("\x00\xff not even base64"))
	})

	t.Run("session aged exactly the TTL is still valid", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		m := newManager(clock)
		id := m.Create()

		clock.Advance(session.DefaultTTL)

		assert.True(t, m.Validate(id))
	})

	t.Run("session past the TTL is invalid and removed", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		m := newManager(clock)
		id := m.Create()
		require.True(t, m.Validate(id))

		clock.Advance(session.DefaultTTL + time.Millisecond)

		assert.False(t, m.Validate(id))
		assert.Equal(t, 0, m.Len())
	})

	t.Run("custom TTL is honoured", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		m := newManager(clock, session.WithTTL(time.Minute))
		id := m.Create()

		clock.Advance(59 * time.Second)
		assert.True(t, m.Validate(id))

		clock.Advance(2 * time.Second)
		assert.False(t, m.Validate(id))
	})
}

func TestManager_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		t.Parallel()

		m := session.New()

		_, err := m.Get("missing")

		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("returns ErrExpired once, then ErrNotFound", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		m := newManager(clock)
		id := m.Create()

		clock.Advance(session.DefaultTTL + time.Second)

		_, err := m.Get(id)
		assert.ErrorIs(t, err, session.ErrExpired)

		_, err = m.Get(id)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deleted session is invalid", func(t *testing.T) {
		t.Parallel()

		m := session.New()
		a := m.Create()
		b := m.Create()

		m.Delete(a)

		assert.False(t, m.Validate(a))
		assert.True(t, m.Validate(b))
		assert.Equal(t, 1, m.Len())
	})

	t.Run("unknown and repeated deletes are no-ops", func(t *testing.T) {
		t.Parallel()

		m := session.New()
		id := m.Create()

		assert.NotPanics(t, func() {
			m.Delete("never-created")
			m.Delete("")
			m.Delete(id)
			m.Delete(id)
		})
		assert.Equal(t, 0, m.Len())
	})

	t.Run("new session after delete gets a different id", func(t *testing.T) {
		t.Parallel()

		m := session.New()
		old := m.Create()
		m.Delete(old)

		fresh := m.Create()

		assert.NotEqual(t, old, fresh)
		assert.False(t, m.Validate(old))
	})
}

func TestManager_SweepExpired(t *testing.T) {
	t.Parallel()

	t.Run("removes all expired sessions", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		m := newManager(clock)
		const k = 25
		for range k {
			m.Create()
		}

		clock.Advance(session.DefaultTTL + time.Millisecond)

		assert.Equal(t, k, m.SweepExpired())
		assert.Equal(t, 0, m.Len())
	})

	t.Run("create sweeps abandoned sessions", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		m := newManager(clock)
		for range 10 {
			m.Create()
		}

		clock.Advance(session.DefaultTTL + time.Millisecond)
		id := m.Create()

		assert.Equal(t, 1, m.Len())
		assert.True(t, m.Validate(id))
	})

	t.Run("keeps sessions that are still live", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		m := newManager(clock)
		old := m.Create()

		clock.Advance(12 * time.Hour)
		young := m.Create()

		clock.Advance(12*time.Hour + time.Millisecond)

		assert.Equal(t, 1, m.SweepExpired())
		assert.False(t, m.Validate(old))
		assert.True(t, m.Validate(young))
	})

	t.Run("empty table sweeps nothing", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, session.New().SweepExpired())
	})
}

func TestManager_Clear(t *testing.T) {
	t.Parallel()

	m := session.New()
	ids := []string{m.Create(), m.Create(), m.Create()}

	m.Clear()

	assert.Equal(t, 0, m.Len())
	for _, id := range ids {
		assert.False(t, m.Validate(id))
	}
}

func TestManager_Run(t *testing.T) {
	t.Parallel()

	t.Run("janitor sweeps periodically until cancelled", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		m := newManager(clock)
		for range 5 {
			m.Create()
		}
		clock.Advance(session.DefaultTTL + time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- m.Run(ctx, 5*time.Millisecond)() }()

		require.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("janitor did not stop after cancellation")
		}
	})

	t.Run("disabled janitor waits for cancellation", func(t *testing.T) {
		t.Parallel()

		m := session.New()
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- m.Run(ctx, 0)() }()

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("disabled janitor did not return after cancellation")
		}
	})
}

func TestManager_Concurrency(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	m := newManager(clock, session.WithTTL(time.Hour))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := range workers {
		go func() {
			defer wg.Done()
			for i := range 100 {
				id := m.Create()
				if !m.Validate(id) {
					t.Errorf("worker %d: session %d invalid right after creation", w, i)
					return
				}
				if i%2 == 0 {
					m.Delete(id)
				}
				if i%10 == 0 {
					clock.Advance(time.Second)
					m.SweepExpired()
				}
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, workers*50, m.Len(), fmt.Sprintf("expected half of %d sessions to remain", workers*100))
}
