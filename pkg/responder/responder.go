// Package responder provides the simulated reply source. A production
// build would swap in a model-backed chat.Responder here; everything
// upstream of it, including the crisis gate, is unchanged by that swap.
package responder

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"tableflip.dev/numa/pkg/chat"
)

// DefaultDelay simulates the typing latency of a real backend.
const DefaultDelay = 1500 * time.Millisecond

// DefaultResponses are the canned supportive replies.
var DefaultResponses = []string{
	"I hear you, and I want you to know that your feelings are valid. Can you tell me more about what's going on?",
	"That sounds really difficult. It's okay to feel this way. How long have you been feeling like this?",
	"Thank you for sharing that with me. Remember, healing takes time, and it's okay to take things one day at a time.",
	"I'm here for you. What you're experiencing is part of being human. Have you tried any coping strategies that help?",
	"Your strength in reaching out shows courage. What's one small thing that might help you feel a bit better today?",
}

// Canned picks a random supportive reply after a fixed delay.
type Canned struct {
	Delay     time.Duration
	Responses []string

	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Canned responder with the default replies and delay.
func New() *Canned {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Canned responder with a deterministic pick order.
func NewSeeded(seed int64) *Canned {
	return &Canned{
		Delay:     DefaultDelay,
		Responses: DefaultResponses,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Reply implements chat.Responder. The delay always runs to completion
// unless ctx is cancelled first.
func (c *Canned) Reply(ctx context.Context, _ string, _ []chat.Message) (string, error) {
	if len(c.Responses) == 0 {
		return "", errors.New("responder: no responses configured")
	}
	if c.Delay > 0 {
		select {
		case <-time.After(c.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c.Responses[c.rng.Intn(len(c.Responses))], nil
}
