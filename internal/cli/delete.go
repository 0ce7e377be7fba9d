package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "delete [memory-id]",
		Short: "Delete a memory you shared",
		Args:  cobra.ExactArgs(1),
		Run:   runDelete,
	}

	RootCmd.AddCommand(cmd)
}

func runDelete(cmd *cobra.Command, args []string) {
	result, err := newClient().Delete(cmd.Context(), args[0])
	if err != nil {
		exitErr("delete", err)
	}
	finish(result, result.Success)
}
