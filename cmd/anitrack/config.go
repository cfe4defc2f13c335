package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long:  "Show every configuration field with its environment variable, current value and default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cellStyle := lipgloss.NewStyle().Padding(0, 1)

			t := table.New().
				Border(lipgloss.HiddenBorder()).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == table.HeaderRow:
						return styles.HeaderStyle.Padding(0, 1)
					case col == 0:
						return styles.IDStyle.Padding(0, 1)
					default:
						return cellStyle
					}
				}).
				Headers("Key", "Env", "Value", "Default")

			for _, f := range config.Fields() {
				t.Row(f.Key, f.Env(), fmt.Sprint(viper.Get(f.Key)), fmt.Sprint(f.Value))
			}

			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}
