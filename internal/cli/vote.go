package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/exchange"
)

func init() {
	cmd := &cobra.Command{
		Use:   "vote [memory-id] [value]",
		Short: "Vote on a memory you used (1 up, -1 down)",
		Args:  cobra.ExactArgs(2),
		Run:   runVote,
	}

	cmd.Flags().StringP("outcome", "o", "", "Note explaining the result")

	RootCmd.AddCommand(cmd)
}

func runVote(cmd *cobra.Command, args []string) {
	value, err := strconv.Atoi(args[1])
	if err != nil {
		exitErr("vote", fmt.Errorf("value must be 1 or -1, got %q", args[1]))
	}
	outcome, _ := cmd.Flags().GetString("outcome")

	result, err := newClient().Vote(cmd.Context(), args[0], exchange.VoteParams{
		Value:   value,
		Outcome: outcome,
	})
	if err != nil {
		exitErr("vote", err)
	}
	finish(result, result.Success)
}
