package options

import (
	"github.com/spf13/cobra"
)

// IDOptions toggles id display on listings.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show entry ids.")
}
