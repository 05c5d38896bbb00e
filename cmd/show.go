package cmd

import (
	"github.com/hyprveil/hyprveil/internal/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the status-bar line",
	Long: `Print one JSON object for a waybar custom module: an icon with the minimized
count, a CSS class ("empty" or "has-windows"), and a tooltip. Always JSON,
regardless of --format.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	st, err := newEngine().Status()
	if err != nil {
		return err
	}
	return output.PrintJSON(st)
}
