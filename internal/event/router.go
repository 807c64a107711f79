package event

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/doccore/internal/logging"
)

// Sink accepts messages for a target. It is safe for concurrent use.
type Sink interface {
	Submit(target uuid.UUID, msg any) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(target uuid.UUID, msg any) error

// Submit calls f.
func (f SinkFunc) Submit(target uuid.UUID, msg any) error {
	return f(target, msg)
}

// Message is a delivered payload.
type Message struct {
	Target  uuid.UUID
	Payload any
	SentAt  time.Time
}

// Superseder is implemented by payloads that make an older queued payload
// obsolete. When a mailbox is full, such a payload replaces the one it
// supersedes in the overflow list instead of being dropped.
type Superseder interface {
	Supersedes(queued any) bool
}

// Mailbox is the receiving end registered for one target.
type Mailbox struct {
	id uuid.UUID
	ch chan Message

	mu       sync.Mutex
	overflow []Message
	limit    int
	ready    chan struct{}
}

func newMailbox(id uuid.UUID, size int) *Mailbox {
	return &Mailbox{
		id:    id,
		ch:    make(chan Message, size),
		limit: size,
		ready: make(chan struct{}, 1),
	}
}

// ID returns the target id the mailbox receives for.
func (m *Mailbox) ID() uuid.UUID {
	return m.id
}

// C returns the channel messages arrive on. It is closed when the mailbox
// is unregistered or the router is closed.
func (m *Mailbox) C() <-chan Message {
	return m.ch
}

// Overflow signals that superseding messages were parked because the
// queue was full. They are delivered by TryReceive and Drain once the
// queue is empty. The channel is never closed.
func (m *Mailbox) Overflow() <-chan struct{} {
	return m.ready
}

// TryReceive returns the next message without blocking. Queued messages
// come first, then parked overflow messages in arrival order.
func (m *Mailbox) TryReceive() (Message, bool) {
	select {
	case msg, ok := <-m.ch:
		if ok {
			return msg, true
		}
	default:
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.overflow) == 0 {
		return Message{}, false
	}
	msg := m.overflow[0]
	m.overflow = m.overflow[1:]
	return msg, true
}

// park keeps msg aside when the queue is full. It reports false when msg
// supersedes nothing and the overflow list is at its limit, or when the
// payload cannot be parked at all.
func (m *Mailbox) park(msg Message) bool {
	sup, ok := msg.Payload.(Superseder)
	if !ok {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, parked := range m.overflow {
		if sup.Supersedes(parked.Payload) {
			m.overflow[i] = msg
			m.signal()
			return true
		}
		if older, ok := parked.Payload.(Superseder); ok && older.Supersedes(msg.Payload) {
			return true
		}
	}
	if len(m.overflow) >= m.limit {
		return false
	}
	m.overflow = append(m.overflow, msg)
	m.signal()
	return true
}

func (m *Mailbox) signal() {
	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// Drain hands every queued message to fn and returns how many it handled.
func (m *Mailbox) Drain(fn func(Message)) int {
	n := 0
	for {
		msg, ok := m.TryReceive()
		if !ok {
			return n
		}
		fn(msg)
		n++
	}
}

// Len returns the number of queued and parked messages.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ch) + len(m.overflow)
}

// Stats is a snapshot of router counters.
type Stats struct {
	Submitted uint64
	Parked    uint64
	Dropped   uint64
	Targets   int
}

// Router routes messages to mailboxes by target id.
type Router struct {
	mu        sync.RWMutex
	mailboxes map[uuid.UUID]*Mailbox
	closed    bool

	config routerConfig
	logger *logging.Logger

	submitted atomic.Uint64
	parked    atomic.Uint64
	dropped   atomic.Uint64
}

// NewRouter creates a router.
func NewRouter(opts ...Option) *Router {
	config := defaultRouterConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Router{
		mailboxes: make(map[uuid.UUID]*Mailbox),
		config:    config,
		logger:    config.logger.WithComponent("event"),
	}
}

// Register creates the mailbox for id.
func (r *Router) Register(id uuid.UUID) (*Mailbox, error) {
	if id == uuid.Nil {
		return nil, ErrNilTarget
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrRouterClosed
	}
	if _, ok := r.mailboxes[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrTargetExists, id)
	}
	box := newMailbox(id, r.config.queueSize)
	r.mailboxes[id] = box
	return box, nil
}

// Unregister removes the mailbox for id and closes its channel. Messages
// still queued can be drained after this returns.
func (r *Router) Unregister(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if box, ok := r.mailboxes[id]; ok {
		delete(r.mailboxes, id)
		close(box.ch)
	}
}

// Submit queues msg for target without blocking. When the mailbox is full,
// a Superseder payload is parked in the overflow list; anything else is
// dropped with ErrQueueFull.
func (r *Router) Submit(target uuid.UUID, msg any) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return ErrRouterClosed
	}
	box, ok := r.mailboxes[target]
	if !ok {
		r.dropped.Add(1)
		return fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}

	m := Message{Target: target, Payload: msg, SentAt: time.Now()}
	select {
	case box.ch <- m:
		r.submitted.Add(1)
		return nil
	default:
		if box.park(m) {
			r.parked.Add(1)
			return nil
		}
		r.dropped.Add(1)
		r.logger.WithField("target", target).Warn("mailbox full, dropping %T", msg)
		return ErrQueueFull
	}
}

// Close closes every mailbox. Later submits fail with ErrRouterClosed.
func (r *Router) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	for id, box := range r.mailboxes {
		close(box.ch)
		delete(r.mailboxes, id)
	}
}

// Stats returns the router counters.
func (r *Router) Stats() Stats {
	r.mu.RLock()
	targets := len(r.mailboxes)
	r.mu.RUnlock()

	return Stats{
		Submitted: r.submitted.Load(),
		Parked:    r.parked.Load(),
		Dropped:   r.dropped.Load(),
		Targets:   targets,
	}
}
