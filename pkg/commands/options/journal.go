package options

import (
	"github.com/spf13/cobra"
)

// JournalOptions captures entry creation flags.
type JournalOptions struct {
	Title    string
	Content  string
	NoPrompt bool
}

func AddJournalArgs(cmd *cobra.Command, o *JournalOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title for the entry.")
	cmd.Flags().StringVarP(&o.Content, "content", "m", "",
		"Body of the entry.")
	cmd.Flags().BoolVar(&o.NoPrompt, "no-prompt", false,
		"Do not attach today's prompt to the entry.")
}
