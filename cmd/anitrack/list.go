package cmd

import (
	"fmt"

	"github.com/kerbaras/anitrack/pkg/app/components"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/services"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your watchlist",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withTracker(cmd.Context(), func(t *services.Tracker) error {
				entries, err := t.List(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					_, err = styles.NoticeColor.Fprintln(out, "Your watchlist is empty!")
					return err
				}

				fmt.Fprintln(out, styles.TitleStyle.Render(fmt.Sprintf("📺 Your Watchlist (%d)", len(entries))))
				fmt.Fprintln(out, components.WatchlistTable(entries))
				return nil
			})
		},
	}
}
