package chat

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/numa/pkg/chat"
	"tableflip.dev/numa/pkg/crisis"
	"tableflip.dev/numa/pkg/printers"
	"tableflip.dev/numa/pkg/store"
)

// Send delivers one message through the full pipeline and prints the
// updated transcript.
type Send struct {
	Message     string
	Persistence store.Persistence
	Responder   chat.Responder
}

func (s *Send) Do(ctx context.Context) error {
	m := chat.NewManager(s.Persistence, s.Responder)
	if err := m.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "chat: starting fresh: %s\n", err)
	}

	ex, err := m.Send(ctx, s.Message)
	if err != nil {
		if ex.Assistant.ID == "" {
			return err
		}
		// Reply happened, only the write failed. The session still has it.
		fmt.Fprintf(os.Stderr, "chat: not persisted: %s\n", err)
	}

	pp := printers.PrettyPrint{}
	if ex.Crisis {
		pp.CrisisBanner(crisis.Alert)
	}
	pp.Transcript(m.Messages()...)
	return nil
}

// History prints the stored conversation without sending anything.
type History struct {
	Persistence store.Persistence
}

func (h *History) Do(ctx context.Context) error {
	m := chat.NewManager(h.Persistence, nil)
	if err := m.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "chat: starting fresh: %s\n", err)
	}

	pp := printers.PrettyPrint{}
	pp.Transcript(m.Messages()...)
	return nil
}
