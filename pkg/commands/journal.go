package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/numa/pkg/commands/options"
	journalrunner "tableflip.dev/numa/pkg/runner/journal"
	"tableflip.dev/numa/pkg/store"
)

func addJournal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Write and search your journal",
		Example: `
numa journal add --title "Rough Monday" --content "..."
numa journal search gratitude
numa journal prompt
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addJournalAdd(cmd)
	addJournalList(cmd)
	addJournalSearch(cmd)
	addJournalDelete(cmd)
	addJournalPrompt(cmd)

	topLevel.AddCommand(cmd)
}

func addJournalAdd(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a new entry",
		Example: `
numa journal add --title "Rough Monday" --content "Today was a lot, but I got through it."
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			a := journalrunner.Add{
				Title:       jo.Title,
				Content:     jo.Content,
				NoPrompt:    jo.NoPrompt,
				Persistence: p,
			}
			return a.Do(cmd.Context())
		},
	}

	options.AddJournalArgs(cmd, jo)
	topLevel.AddCommand(cmd)
}

func addJournalList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			l := journalrunner.List{ShowID: io.ShowID, Persistence: p}
			return l.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addJournalSearch(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search entries by title or content",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			l := journalrunner.List{
				Query:       strings.Join(args, " "),
				ShowID:      io.ShowID,
				Persistence: p,
			}
			return l.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addJournalDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			d := journalrunner.Delete{ID: args[0], Persistence: p}
			return d.Do(cmd.Context())
		},
	}
	topLevel.AddCommand(cmd)
}

func addJournalPrompt(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Show today's journaling prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			pr := journalrunner.Prompt{}
			return pr.Do(cmd.Context())
		},
	}
	topLevel.AddCommand(cmd)
}
