package authstate

import (
	"context"
	"sync"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// Manager keeps one provider per active session so the route guard can
// consult a resolved snapshot per request. It implements
// domain.SessionNotifier: the auth service reports session transitions and
// the manager routes them to the owning provider's broker.
type Manager struct {
	profiles domain.ProfileRepository

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	broker   *Broker
	provider *Provider
}

// NewManager creates a manager resolving roles through profiles.
func NewManager(profiles domain.ProfileRepository) *Manager {
	return &Manager{
		profiles: profiles,
		entries:  make(map[string]*entry),
	}
}

// SessionStarted implements domain.SessionNotifier. The caller's context
// only scopes the notification itself; the provider resolves profiles on
// its own lifetime context, since the session outlives the request that
// reported it.
func (m *Manager) SessionStarted(_ context.Context, session *domain.Session) {
	if session == nil {
		return
	}
	e := m.entryFor(session.ID)
	e.broker.Publish(session)
}

// SessionRefreshed implements domain.SessionNotifier. A refresh opens a new
// resolution episode for the session, so a stale profile fetch from before
// the refresh can never overwrite the refreshed state.
func (m *Manager) SessionRefreshed(ctx context.Context, session *domain.Session) {
	m.SessionStarted(ctx, session)
}

// SessionEnded implements domain.SessionNotifier. The provider observes the
// sign-out synchronously and its entry is removed.
func (m *Manager) SessionEnded(_ context.Context, sessionID string) {
	m.mu.Lock()
	e, ok := m.entries[sessionID]
	if ok {
		delete(m.entries, sessionID)
	}
	m.mu.Unlock()

	if ok {
		e.broker.Publish(nil)
		e.provider.Close()
	}
}

// Snapshot returns the resolved state for a session, if the manager is
// tracking it.
func (m *Manager) Snapshot(sessionID string) (State, bool) {
	m.mu.Lock()
	e, ok := m.entries[sessionID]
	m.mu.Unlock()
	if !ok {
		return State{}, false
	}
	return e.provider.Snapshot(), true
}

// Close tears down every tracked provider.
func (m *Manager) Close() {
	m.mu.Lock()
	entries := m.entries
	m.entries = make(map[string]*entry)
	m.mu.Unlock()

	for _, e := range entries {
		e.provider.Close()
	}
}

func (m *Manager) entryFor(sessionID string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[sessionID]; ok {
		return e
	}
	e := &entry{
		broker:   NewBroker(),
		provider: NewProvider(m.profiles),
	}
	e.provider.Start(e.broker)
	m.entries[sessionID] = e
	return e
}

var _ domain.SessionNotifier = (*Manager)(nil)
