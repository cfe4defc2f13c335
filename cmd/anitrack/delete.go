package cmd

import (
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/services"
	"github.com/spf13/cobra"
)

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "delete [mal-id]",
		Aliases: []string{"rm"},
		Short:   "Remove an anime from your watchlist",
		Args:    intArgs("MAL ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := atoi(args[0])

			return opts.withTracker(cmd.Context(), func(t *services.Tracker) error {
				title, found, err := t.Delete(cmd.Context(), id)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if !found {
					_, err = styles.NoticeColor.Fprintf(out, "No anime found with MAL ID %d in your watchlist.\n", id)
					return err
				}
				_, err = styles.SuccessColor.Fprintf(out, "Deleted %s from your watchlist!\n", title)
				return err
			})
		},
	}
}
