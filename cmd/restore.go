package cmd

import (
	"github.com/hyprveil/hyprveil/internal/output"
	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [address]",
	Short: "Restore a minimized window",
	Long: `Restore a window by address, or open the walker picker over all minimized
windows when no address is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRestore,
}

var restoreLastCmd = &cobra.Command{
	Use:   "restore-last",
	Short: "Restore the most recently minimized window",
	RunE:  runRestoreLast,
}

var restoreAllCmd = &cobra.Command{
	Use:   "restore-all",
	Short: "Restore all minimized windows, oldest first",
	RunE:  runRestoreAll,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(restoreLastCmd)
	rootCmd.AddCommand(restoreAllCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	eng := newEngine()

	if len(args) == 1 {
		if err := eng.Restore(args[0]); err != nil {
			return err
		}
		return output.Print(output.Result{OK: true, Action: "restore", Address: args[0]})
	}

	address, err := eng.SelectAndRestore()
	if err != nil {
		return err
	}
	if address == "" {
		return output.Print(output.Result{OK: false, Action: "restore", Detail: "nothing restored"})
	}
	return output.Print(output.Result{OK: true, Action: "restore", Address: address})
}

func runRestoreLast(cmd *cobra.Command, args []string) error {
	address, err := newEngine().RestoreLast()
	if err != nil {
		return err
	}
	if address == "" {
		return output.Print(output.Result{OK: false, Action: "restore-last", Detail: "no minimized windows"})
	}
	return output.Print(output.Result{OK: true, Action: "restore-last", Address: address})
}

func runRestoreAll(cmd *cobra.Command, args []string) error {
	n, err := newEngine().RestoreAll()
	if err != nil {
		return err
	}
	return output.Print(output.Result{OK: true, Action: "restore-all", Count: n})
}
