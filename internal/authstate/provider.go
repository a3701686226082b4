package authstate

import (
	"context"
	"sync"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// State is the derived auth snapshot exposed to consumers. The three fields
// always belong to the same resolution episode: readers never observe a user
// from one session paired with a role from another.
type State struct {
	User    *domain.Session
	Role    domain.Role
	Loading bool
}

// Provider owns the auth state for one principal. It observes a session
// source, resolves the role for each non-nil session from the profile
// repository, and publishes consistent snapshots. Profile resolution is
// asynchronous; each session transition opens a new episode and a response
// belonging to a superseded episode is discarded.
//
// The provider is the only writer of its state. Consumers read through
// Snapshot or register a callback with Subscribe.
type Provider struct {
	profiles domain.ProfileRepository

	// Profile fetches run on the provider's own lifetime context, never on
	// the context of whichever request happened to publish the transition:
	// a session outlives the login request that created it.
	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	state       State
	episode     uint64
	subscribers map[int]func(State)
	nextSubID   int
	unsubscribe func()
	closed      bool
}

// NewProvider creates a provider that resolves roles through profiles.
// The initial state is loading until the first session resolution completes.
func NewProvider(profiles domain.ProfileRepository) *Provider {
	ctx, cancel := context.WithCancel(context.Background())
	return &Provider{
		profiles:    profiles,
		ctx:         ctx,
		cancel:      cancel,
		state:       State{Loading: true},
		subscribers: make(map[int]func(State)),
	}
}

// Start reads the current session from source and subscribes to future
// session transitions. Exactly one subscription is held; Close releases it.
func (p *Provider) Start(source domain.SessionSource) {
	p.mu.Lock()
	if p.unsubscribe != nil || p.closed {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	unsub := source.OnSessionChange(p.apply)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		unsub()
		return
	}
	p.unsubscribe = unsub
	p.mu.Unlock()

	p.apply(source.CurrentSession())
}

// Close releases the session subscription and drops all consumer callbacks.
func (p *Provider) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.cancel()
	unsub := p.unsubscribe
	p.unsubscribe = nil
	p.subscribers = make(map[int]func(State))
	p.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// Snapshot returns a consistent copy of the current state.
func (p *Provider) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Subscribe registers fn to receive every subsequent snapshot. The returned
// function removes the registration.
func (p *Provider) Subscribe(fn func(State)) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subscribers, id)
		p.mu.Unlock()
	}
}

// apply processes one session transition. A nil session (sign-out) clears
// user and role synchronously with no intermediate loading flash. A non-nil
// session enters loading and kicks off an asynchronous role resolution
// tagged with the new episode number.
func (p *Provider) apply(sess *domain.Session) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.episode++
	episode := p.episode

	if sess == nil {
		p.setStateLocked(State{User: nil, Role: domain.RoleNone, Loading: false})
		return
	}

	p.setStateLocked(State{User: sess, Role: domain.RoleNone, Loading: true})

	go p.resolve(episode, sess)
}

// resolve fetches the profile for sess and applies the result if the episode
// is still current. A failed fetch degrades to a role-less authenticated
// state rather than an error.
func (p *Provider) resolve(episode uint64, sess *domain.Session) {
	role := domain.RoleNone
	profile, err := p.profiles.FindByUserID(p.ctx, sess.UserID)
	if err == nil && profile != nil {
		role = profile.Role
	}

	p.mu.Lock()
	if p.closed || episode != p.episode {
		// A newer session transition superseded this fetch.
		p.mu.Unlock()
		return
	}
	p.setStateLocked(State{User: sess, Role: role, Loading: false})
}

// setStateLocked stores the new state and notifies subscribers. The caller
// must hold p.mu; the lock is released before callbacks run so subscribers
// may call Snapshot or Subscribe.
func (p *Provider) setStateLocked(st State) {
	p.state = st
	fns := make([]func(State), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}
