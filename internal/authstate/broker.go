package authstate

import (
	"sync"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// Broker is an in-process session source for a single principal. The auth
// service publishes session transitions to it; the provider subscribes.
// Publish delivers callbacks under the broker lock, so notifications are
// observed in issuance order.
type Broker struct {
	mu          sync.Mutex
	current     *domain.Session
	subscribers map[int]func(*domain.Session)
	nextSubID   int
}

// NewBroker creates an empty broker with no current session.
func NewBroker() *Broker {
	return &Broker{subscribers: make(map[int]func(*domain.Session))}
}

// Publish records sess as the current session and notifies subscribers.
// A nil sess means signed out.
func (b *Broker) Publish(sess *domain.Session) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = sess
	for _, fn := range b.subscribers {
		fn(sess)
	}
}

// CurrentSession implements domain.SessionSource.
func (b *Broker) CurrentSession() *domain.Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// OnSessionChange implements domain.SessionSource.
func (b *Broker) OnSessionChange(fn func(*domain.Session)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextSubID
	b.nextSubID++
	b.subscribers[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subscribers, id)
		b.mu.Unlock()
	}
}

var _ domain.SessionSource = (*Broker)(nil)
