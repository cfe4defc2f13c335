package cmd

import (
	"github.com/kerbaras/anitrack/pkg/app"
	"github.com/kerbaras/anitrack/pkg/services"
	"github.com/spf13/cobra"
)

func newBrowseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse your watchlist interactively",
		Long:  "Open a terminal UI to move through your watchlist, bump watched episodes and remove entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withTracker(cmd.Context(), func(t *services.Tracker) error {
				return app.NewApp(t).Run(cmd.Context())
			})
		},
	}
}
