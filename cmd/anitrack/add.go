package cmd

import (
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/services"
	"github.com/spf13/cobra"
)

func newAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add [mal-id]",
		Short: "Add an anime to your watchlist",
		Long:  "Look the anime up by MyAnimeList ID and add it to your watchlist. Adding an anime again resets its progress",
		Args:  intArgs("MAL ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := atoi(args[0])

			return opts.withTracker(cmd.Context(), func(t *services.Tracker) error {
				anime, err := t.Add(cmd.Context(), id)
				if err != nil {
					return err
				}

				_, err = styles.SuccessColor.Fprintf(cmd.OutOrStdout(), "Added %s to watchlist!\n", anime.Title)
				return err
			})
		},
	}
}
