package state

import (
	"sync"
	"time"
)

// State is the pending input a user owes the bot.
type State string

const (
	None            State = ""
	AwaitingChat    State = "add_chat"
	AwaitingKeyword State = "add_kw"
)

type userState struct {
	State   State
	Entered time.Time
}

// Manager keeps one pending state per user. A state lives until it is taken
// by the user's next message, or until the TTL passes when one is set.
type Manager struct {
	mutex  sync.Mutex
	states map[int64]userState
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Manager)

// WithTTL expires pending states after ttl. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.ttl = ttl
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		states: make(map[int64]userState, 16),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Enter(userID int64, state State) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if state == None {
		delete(m.states, userID)
		return
	}
	m.states[userID] = userState{State: state, Entered: m.now()}
}

// Get returns the pending state without consuming it.
func (m *Manager) Get(userID int64) State {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	s, ok := m.states[userID]
	if !ok || m.expired(s) {
		return None
	}
	return s.State
}

// Take returns the pending state and clears it.
func (m *Manager) Take(userID int64) State {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	s, ok := m.states[userID]
	if !ok {
		return None
	}
	delete(m.states, userID)
	if m.expired(s) {
		return None
	}
	return s.State
}

func (m *Manager) Exit(userID int64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.states, userID)
}

func (m *Manager) expired(s userState) bool {
	return m.ttl > 0 && m.now().Sub(s.Entered) >= m.ttl
}
