package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "report [memory-id]",
		Short: "Report a memory as spam, wrong, or harmful",
		Args:  cobra.ExactArgs(1),
		Run:   runReport,
	}

	cmd.Flags().StringP("reason", "r", "", "Why this memory should be reviewed")

	RootCmd.AddCommand(cmd)
}

func runReport(cmd *cobra.Command, args []string) {
	reason, _ := cmd.Flags().GetString("reason")

	result, err := newClient().Report(cmd.Context(), args[0], reason)
	if err != nil {
		exitErr("report", err)
	}
	finish(result, result.Success)
}
