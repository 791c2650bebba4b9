package allauth

import (
	"sync"

	"github.com/google/uuid"
)

// SubscriberFunc receives the resolved status and the transition kind (which
// may be AuthChangeNone) every time a new snapshot is accepted.
type SubscriberFunc func(info AuthInfo, kind AuthChangeKind)

// NotifierOption customizes ChangeNotifier construction.
type NotifierOption func(*ChangeNotifier)

// WithNotifierLogger overrides the notifier logger.
func WithNotifierLogger(l Logger) NotifierOption {
	return func(n *ChangeNotifier) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithNotifierConfiguration seeds the configuration snapshot the detector
// resolves against.
func WithNotifierConfiguration(cfg *ConfigurationResponse) NotifierOption {
	return func(n *ChangeNotifier) {
		n.config = cfg
	}
}

// ChangeNotifier owns the only mutable state of the core: the last snapshot
// it evaluated. Each observed snapshot is compared against the retained one,
// the detector runs, and the resulting kind (if any) is stored for exactly
// one read and fanned out to subscribers.
//
// Construct one per application session; there is no package-level instance.
// All methods are safe for concurrent use, with observe/consume sharing a
// single lock so compare-detect-replace is atomic.
type ChangeNotifier struct {
	mu          sync.Mutex
	config      *ConfigurationResponse
	prev        *AuthResponse
	pending     AuthChangeKind
	lastSeq     uint64
	subscribers map[string]SubscriberFunc
	logger      Logger
}

// NewChangeNotifier returns an empty notifier: no retained snapshot, no
// pending event.
func NewChangeNotifier(opts ...NotifierOption) *ChangeNotifier {
	n := &ChangeNotifier{
		subscribers: map[string]SubscriberFunc{},
		logger:      defLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// SetConfiguration replaces the configuration snapshot used for resolution.
func (n *ChangeNotifier) SetConfiguration(cfg *ConfigurationResponse) {
	n.mu.Lock()
	n.config = cfg
	n.mu.Unlock()
}

// Observe feeds a new snapshot with no sequence stamp; it is always accepted.
func (n *ChangeNotifier) Observe(auth *AuthResponse) AuthChangeKind {
	return n.ObserveSequenced(0, auth)
}

// ObserveSequenced feeds a snapshot stamped with a monotonic sequence number.
// The wire format has no staleness token, so the stamp is assigned by
// whoever issues the requests; observations older than the last accepted one
// are dropped rather than trusted to arrive in order. A zero sequence
// bypasses the guard.
//
// The retained snapshot is replaced unconditionally for accepted
// observations, whether or not a transition fired.
func (n *ChangeNotifier) ObserveSequenced(seq uint64, auth *AuthResponse) AuthChangeKind {
	if auth == nil {
		return AuthChangeNone
	}

	n.mu.Lock()
	if seq != 0 && seq <= n.lastSeq {
		n.logger.Debug("dropping stale snapshot seq=%d last=%d", seq, n.lastSeq)
		n.mu.Unlock()
		return AuthChangeNone
	}
	if seq != 0 {
		n.lastSeq = seq
	}

	kind := AuthChangeNone
	if n.prev != nil {
		kind = DetermineAuthChange(n.prev, auth, n.config)
	}
	if kind != AuthChangeNone {
		n.pending = kind
	}
	n.prev = auth

	info := Resolve(auth, n.config)
	subs := make([]SubscriberFunc, 0, len(n.subscribers))
	for _, fn := range n.subscribers {
		subs = append(subs, fn)
	}
	n.mu.Unlock()

	for _, fn := range subs {
		fn(info, kind)
	}
	return kind
}

// ConsumeEvent returns the stored transition and clears it. Single-read
// semantics keep multiple subscribers or re-renders from reacting twice to
// the same transition.
func (n *ChangeNotifier) ConsumeEvent() AuthChangeKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	kind := n.pending
	n.pending = AuthChangeNone
	return kind
}

// Current resolves the retained snapshot against the configuration.
func (n *ChangeNotifier) Current() AuthInfo {
	n.mu.Lock()
	defer n.mu.Unlock()
	return Resolve(n.prev, n.config)
}

// Subscribe registers a callback and returns its subscription id.
func (n *ChangeNotifier) Subscribe(fn SubscriberFunc) string {
	id := uuid.NewString()
	n.mu.Lock()
	n.subscribers[id] = fn
	n.mu.Unlock()
	return id
}

// Unsubscribe removes a previously registered callback.
func (n *ChangeNotifier) Unsubscribe(id string) {
	n.mu.Lock()
	delete(n.subscribers, id)
	n.mu.Unlock()
}
