package mocks

import (
	"context"
	"sync"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// MockSessionNotifier implements domain.SessionNotifier for testing and
// records the transitions it observed, in order.
type MockSessionNotifier struct {
	mu     sync.Mutex
	Events []SessionEvent
}

// SessionEvent is one recorded session transition
type SessionEvent struct {
	Kind      string // "started", "refreshed", "ended"
	SessionID string
	Session   *domain.Session
}

// NewMockSessionNotifier creates a new MockSessionNotifier
func NewMockSessionNotifier() *MockSessionNotifier {
	return &MockSessionNotifier{}
}

func (m *MockSessionNotifier) SessionStarted(_ context.Context, session *domain.Session) {
	m.record(SessionEvent{Kind: "started", SessionID: session.ID, Session: session})
}

func (m *MockSessionNotifier) SessionRefreshed(_ context.Context, session *domain.Session) {
	m.record(SessionEvent{Kind: "refreshed", SessionID: session.ID, Session: session})
}

func (m *MockSessionNotifier) SessionEnded(_ context.Context, sessionID string) {
	m.record(SessionEvent{Kind: "ended", SessionID: sessionID})
}

// Recorded returns a copy of the observed transitions
func (m *MockSessionNotifier) Recorded() []SessionEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SessionEvent, len(m.Events))
	copy(out, m.Events)
	return out
}

func (m *MockSessionNotifier) record(e SessionEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, e)
}

var _ domain.SessionNotifier = (*MockSessionNotifier)(nil)
