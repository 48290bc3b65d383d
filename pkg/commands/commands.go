package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/numa/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "numa",
		Short: base.Wrap80("Numa, your personal wellness companion: supportive chat, mood tracking, and journaling, all stored on your machine."),
		RunE: func(cmd *cobra.Command, args []string) error {
			// One-time hint, gated by the dismissal flag so it never
			// repeats.
			if p, err := store.Load(nil); err == nil && !p.Flag(store.InstallDismissed) {
				fmt.Println("tip: `numa chat` opens your companion. This hint shows only once.")
				_ = p.SetFlag(store.InstallDismissed, true)
			}
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addChat(topLevel)
	addMood(topLevel)
	addJournal(topLevel)
	addVersion(topLevel)
}
