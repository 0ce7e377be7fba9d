package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "applied",
		Short: "List or mark memories this agent has used",
		Run:   runApplied,
	}

	cmd.Flags().Bool("unvoted", false, "Only records awaiting a vote")
	cmd.Flags().String("mark", "", "Mark a memory id as applied")
	cmd.Flags().String("context", "", "Note about how the memory was used (with --mark)")

	RootCmd.AddCommand(cmd)
}

func runApplied(cmd *cobra.Command, args []string) {
	unvoted, _ := cmd.Flags().GetBool("unvoted")
	mark, _ := cmd.Flags().GetString("mark")
	note, _ := cmd.Flags().GetString("context")

	client := newClient()

	if mark != "" {
		rec, err := client.MarkApplied(mark, note)
		if err != nil {
			exitErr("mark applied", err)
		}
		printJSON(rec)
		return
	}

	recs, err := client.Applied(unvoted)
	if err != nil {
		exitErr("applied", err)
	}
	if len(recs) == 0 {
		fmt.Println("[]")
		return
	}
	printJSON(recs)
}
