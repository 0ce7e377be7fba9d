package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "shared",
		Short: "List memories this agent has shared",
		Run:   runShared,
	}

	RootCmd.AddCommand(cmd)
}

func runShared(cmd *cobra.Command, args []string) {
	recs, err := newClient().Shared()
	if err != nil {
		exitErr("shared", err)
	}
	if len(recs) == 0 {
		fmt.Println("[]")
		return
	}
	printJSON(recs)
}
