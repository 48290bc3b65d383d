package options

import (
	"github.com/spf13/cobra"
)

// MoodOptions captures check-in flags.
type MoodOptions struct {
	Intensity int
	Note      string
}

func AddMoodArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().IntVarP(&o.Intensity, "intensity", "i", 0,
		"Intensity from 1 to 10. Defaults to 5.")
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Optional note for the check-in.")
}

// CountOptions limits how many rows list-style commands print.
type CountOptions struct {
	Count  int
	Window string
}

func AddCountArgs(cmd *cobra.Command, o *CountOptions) {
	cmd.Flags().IntVar(&o.Count, "count", 5,
		"Number of check-ins to show.")
	cmd.Flags().StringVar(&o.Window, "window", "",
		`Only show check-ins within a lookback window, example: --window="1w".`)
}
