// Package cmd implements the anitrack command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/config"
	"github.com/kerbaras/anitrack/pkg/data"
	"github.com/kerbaras/anitrack/pkg/key"
	"github.com/kerbaras/anitrack/pkg/log"
	"github.com/kerbaras/anitrack/pkg/services"
	"github.com/kerbaras/anitrack/pkg/sources"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type options struct {
	// newCatalog overrides the Jikan client. Used by tests.
	newCatalog func() sources.Catalog
}

func (o *options) catalog() sources.Catalog {
	if o.newCatalog != nil {
		return o.newCatalog()
	}
	return sources.NewJikan(viper.GetString(key.CatalogURL))
}

// withTracker opens the watchlist for the duration of fn.
func (o *options) withTracker(ctx context.Context, fn func(t *services.Tracker) error) error {
	path, err := config.DatabasePath()
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	store, err := data.Open(ctx, path)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(services.NewTracker(o.catalog(), store))
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "anitrack",
		Short: "Track the anime you watch",
		Long:  "Search MyAnimeList through Jikan and keep a local watchlist of your progress",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if err := config.Setup(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := log.Setup(); err != nil {
				return err
			}
			styles.Setup(viper.GetBool(key.CliColored))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().String("db", "", "Path to the watchlist database")
	lo.Must0(viper.BindPFlag(key.DatabasePath, rootCmd.PersistentFlags().Lookup("db")))

	rootCmd.AddCommand(
		newSearchCmd(opts),
		newAddCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
		newListCmd(opts),
		newBrowseCmd(opts),
		newConfigCmd(),
	)

	return rootCmd
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	rootCmd := newRootCmd(&options{})
	rootCmd.SilenceErrors = true

	if err := config.Setup(); err != nil {
		exit(fmt.Errorf("load config: %w", err))
	}

	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		exit(err)
	}
}

func exit(err error) {
	log.Error(err)
	_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// intArgs accepts exactly len(names) integer arguments.
func intArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(len(names))(cmd, args); err != nil {
			return err
		}
		for i, arg := range args {
			if _, err := strconv.Atoi(arg); err != nil {
				return fmt.Errorf("invalid %s %q: must be an integer", names[i], arg)
			}
		}
		return nil
	}
}

func atoi(s string) int {
	return lo.Must(strconv.Atoi(s))
}
