package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"tableflip.dev/numa/pkg/crisis"
	"tableflip.dev/numa/pkg/record"
	"tableflip.dev/numa/pkg/store"
)

var (
	// ErrEmptyMessage rejects empty or whitespace-only input.
	ErrEmptyMessage = errors.New("chat: empty message")
	// ErrNoResponder is returned when a non-crisis send has nowhere to go.
	ErrNoResponder = errors.New("chat: no responder configured")
)

// Manager owns the chat collection. It hydrates from persistence once,
// seeds a welcome message into an empty conversation, and runs every
// outbound message through the crisis gate before the responder.
//
// Sends are serialized: a second Send blocks until the first completes,
// so stored order is exactly completion order and a user/assistant pair
// never interleaves with another.
type Manager struct {
	mu        sync.Mutex
	p         store.Persistence
	responder Responder
	messages  []Message
	hydrated  bool
}

func NewManager(p store.Persistence, r Responder) *Manager {
	return &Manager{p: p, responder: r}
}

// Initialize hydrates the collection, seeding the welcome message if it
// is empty. Calling it again is a no-op, so the welcome message is never
// duplicated.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hydrate()
}

func (m *Manager) hydrate() error {
	if m.hydrated {
		return nil
	}
	m.hydrated = true

	var hydrationErr error
	if m.p != nil {
		var stored []Message
		if err := m.p.Load(store.ChatCollection, &stored); err != nil {
			// Corrupt history must not take the chat down. Start fresh
			// and surface the error.
			hydrationErr = err
		} else {
			m.messages = stored
		}
	}
	if len(m.messages) == 0 {
		// Seeding alone is not persisted; an untouched session writes
		// nothing.
		m.messages = []Message{welcomeMessage()}
	}
	return hydrationErr
}

// Messages returns a copy of the conversation in strict creation order.
func (m *Manager) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Exchange is the result of one send: the stored user message, the
// stored assistant reply, and whether the crisis gate fired.
type Exchange struct {
	User      Message
	Assistant Message
	Crisis    bool
}

// Send appends the user's message, obtains a reply, appends it, and
// persists the whole collection. The crisis gate runs on every message
// with no opt-out; when it triggers the responder is bypassed entirely
// and the fixed safety text is the reply.
//
// A persistence failure does not roll anything back: the returned
// Exchange and in-memory state stay authoritative for the session, and
// the error is reported so the caller can surface it.
func (m *Manager) Send(ctx context.Context, text string) (Exchange, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Exchange{}, ErrEmptyMessage
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_ = m.hydrate()

	user := Message{
		ID:        record.NewID(),
		Role:      RoleUser,
		Content:   trimmed,
		Timestamp: record.Now(),
	}
	m.messages = append(m.messages, user)

	var reply string
	flagged := crisis.Detect(trimmed)
	if flagged {
		reply = crisis.Response
	} else {
		if m.responder == nil {
			m.messages = m.messages[:len(m.messages)-1]
			return Exchange{}, ErrNoResponder
		}
		var err error
		reply, err = m.responder.Reply(ctx, trimmed, m.snapshot())
		if err != nil {
			// No reply means no exchange: drop the user message so the
			// collection never holds an unanswered pair.
			m.messages = m.messages[:len(m.messages)-1]
			return Exchange{}, err
		}
	}

	assistant := Message{
		ID:        record.NewID(),
		Role:      RoleAssistant,
		Content:   reply,
		Timestamp: record.Now(),
	}
	m.messages = append(m.messages, assistant)

	ex := Exchange{User: user, Assistant: assistant, Crisis: flagged}
	if m.p != nil && len(m.messages) > 1 {
		if err := m.p.Save(store.ChatCollection, m.messages); err != nil {
			return ex, err
		}
	}
	return ex, nil
}

func (m *Manager) snapshot() []Message {
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}
