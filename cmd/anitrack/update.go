package cmd

import (
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/services"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func newUpdateCmd(opts *options) *cobra.Command {
	updateCmd := &cobra.Command{
		Use:   "update [mal-id] [episodes]",
		Short: "Update watched episodes",
		Long:  "Set the number of watched episodes for an anime in your watchlist and optionally rate it",
		Args:  intArgs("MAL ID", "episodes"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, episodes := atoi(args[0]), atoi(args[1])

			rating := mo.None[float64]()
			if cmd.Flags().Changed("rating") {
				rating = mo.Some(lo.Must(cmd.Flags().GetFloat64("rating")))
			}

			return opts.withTracker(cmd.Context(), func(t *services.Tracker) error {
				updated, err := t.Update(cmd.Context(), id, episodes, rating)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if !updated {
					_, err = styles.NoticeColor.Fprintf(out, "No anime found with MAL ID %d in your watchlist.\n", id)
					return err
				}
				_, err = styles.SuccessColor.Fprintf(out, "Updated progress for anime with MAL ID %d\n", id)
				return err
			})
		},
	}

	updateCmd.Flags().Float64P("rating", "r", 0, "Your rating for the anime")

	return updateCmd
}
