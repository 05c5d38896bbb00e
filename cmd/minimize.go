package cmd

import (
	"github.com/hyprveil/hyprveil/internal/output"
	"github.com/spf13/cobra"
)

var minimizeCmd = &cobra.Command{
	Use:   "minimize",
	Short: "Hide the focused window",
	Long:  "Capture the focused window (class, title, thumbnail) and park it in the holding workspace.",
	RunE:  runMinimize,
}

func init() {
	rootCmd.AddCommand(minimizeCmd)
}

func runMinimize(cmd *cobra.Command, args []string) error {
	rec, err := newEngine().Minimize()
	if err != nil {
		return err
	}
	if rec == nil {
		return output.Print(output.Result{
			OK:     false,
			Action: "minimize",
			Detail: "no window minimized (skipped or failed, see log)",
		})
	}
	return output.Print(output.Result{
		OK:      true,
		Action:  "minimize",
		Address: rec.Address,
		Class:   rec.Class,
		Title:   rec.OriginalTitle,
	})
}
