package cmd

import (
	"fmt"
	"strings"

	"github.com/kerbaras/anitrack/pkg/app/components"
	"github.com/kerbaras/anitrack/pkg/key"
	"github.com/kerbaras/anitrack/pkg/services"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSearchCmd(opts *options) *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search for anime",
		Long:  "Search the MyAnimeList catalog and display the matches in a table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			limit := viper.GetInt(key.CatalogLimit)
			if cmd.Flags().Changed("limit") {
				limit = lo.Must(cmd.Flags().GetInt("limit"))
			}

			// search does not touch the watchlist
			tracker := services.NewTracker(opts.catalog(), nil)
			results, err := tracker.Search(cmd.Context(), query, services.SearchOptions{
				Limit:   limit,
				Closest: lo.Must(cmd.Flags().GetBool("closest")),
			})
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No results found.")
				return nil
			}

			fmt.Fprintln(out, components.SearchTable(results))
			return nil
		},
	}

	searchCmd.Flags().IntP("limit", "n", 0, "Maximum number of results (defaults to catalog.limit)")
	searchCmd.Flags().BoolP("closest", "c", false, "Order results by how closely the title matches the query")

	return searchCmd
}
