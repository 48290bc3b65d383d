package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/numa/pkg/commands/options"
	"tableflip.dev/numa/pkg/mood"
	moodrunner "tableflip.dev/numa/pkg/runner/mood"
	"tableflip.dev/numa/pkg/store"
	moodtui "tableflip.dev/numa/pkg/tui/mood"
)

func addMood(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Log and review how you're feeling",
		Example: `
numa mood
numa mood log happy --intensity 8
numa mood week
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			return moodtui.Run(mood.NewManager(p))
		},
	}

	addMoodLog(cmd)
	addMoodWeek(cmd)
	addMoodRecent(cmd)
	addMoodList(cmd)

	topLevel.AddCommand(cmd)
}

func addMoodLog(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}

	cmd := &cobra.Command{
		Use:   "log <mood>",
		Short: "Log one check-in",
		Example: `
numa mood log happy
numa mood log 😰 --intensity 7 --note "big presentation"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			l := moodrunner.Log{
				Mood:        strings.Join(args, " "),
				Intensity:   mo.Intensity,
				Note:        mo.Note,
				Persistence: p,
			}
			return l.Do(cmd.Context())
		},
	}

	options.AddMoodArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}

func addMoodWeek(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the 7-day mood calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			w := moodrunner.Week{Persistence: p}
			return w.Do(cmd.Context())
		},
	}
	topLevel.AddCommand(cmd)
}

func addMoodRecent(topLevel *cobra.Command) {
	co := &options.CountOptions{}

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the latest check-ins",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := moodrunner.Recent{Count: co.Count, Window: co.Window, Persistence: p}
			return r.Do(cmd.Context())
		},
	}

	options.AddCountArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func addMoodList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the mood catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := moodrunner.List{}
			return l.Do(cmd.Context())
		},
	}
	topLevel.AddCommand(cmd)
}
