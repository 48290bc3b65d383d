package chat

import (
	"context"

	"tableflip.dev/numa/pkg/record"
)

// Role identifies which side of the conversation authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat message. Messages are immutable once created
// and the collection is append-only.
type Message struct {
	ID        string           `json:"id"`
	Role      Role             `json:"role"`
	Content   string           `json:"content"`
	Timestamp record.Timestamp `json:"timestamp"`
}

// Responder produces one reply per non-crisis user message. It may take
// a while (a real backend would be a network round-trip), so it honors
// ctx. Crisis messages never reach a Responder.
type Responder interface {
	Reply(ctx context.Context, latest string, history []Message) (string, error)
}

// WelcomeID is the id of the seeded welcome message.
const WelcomeID = "welcome"

// Welcome is the assistant message seeded into an empty conversation.
const Welcome = "Hi there! I'm Numa, your emotional support companion. 💜 I'm here to listen and support you through whatever you're going through. How are you feeling today?"

func welcomeMessage() Message {
	return Message{
		ID:        WelcomeID,
		Role:      RoleAssistant,
		Content:   Welcome,
		Timestamp: record.Now(),
	}
}
