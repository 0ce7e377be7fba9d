package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show registration and ledger status",
		Run:   runStatus,
	}

	RootCmd.AddCommand(cmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	status, err := newClient().Status()
	if err != nil {
		exitErr("status", err)
	}
	printJSON(status)
}
