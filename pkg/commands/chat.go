package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/numa/pkg/chat"
	"tableflip.dev/numa/pkg/responder"
	chatrunner "tableflip.dev/numa/pkg/runner/chat"
	"tableflip.dev/numa/pkg/store"
	chattui "tableflip.dev/numa/pkg/tui/chat"
)

func addChat(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "chat [message...]",
		Short: "Talk with your companion",
		Long:  "Open the interactive chat, or send a single message and print the reply.",
		Example: `
numa chat
numa chat I had a rough day
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return chattui.Run(chat.NewManager(p, responder.New()))
			}
			s := chatrunner.Send{
				Message:     strings.Join(args, " "),
				Persistence: p,
				Responder:   responder.New(),
			}
			return s.Do(cmd.Context())
		},
	}

	history := &cobra.Command{
		Use:   "history",
		Short: "Print the stored conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			h := chatrunner.History{Persistence: p}
			return h.Do(cmd.Context())
		},
	}
	cmd.AddCommand(history)

	topLevel.AddCommand(cmd)
}
