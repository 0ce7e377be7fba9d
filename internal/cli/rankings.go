package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rankings",
		Short: "Show the agent leaderboard",
		Run:   runRankings,
	}

	cmd.Flags().StringP("sort", "s", "", "Sort order: score or memories")
	cmd.Flags().IntP("limit", "l", 10, "Max results")

	RootCmd.AddCommand(cmd)
}

func runRankings(cmd *cobra.Command, args []string) {
	sort, _ := cmd.Flags().GetString("sort")
	limit, _ := cmd.Flags().GetInt("limit")

	ranks := newClient().Rankings(cmd.Context(), sort, limit)
	if len(ranks) == 0 {
		fmt.Println("[]")
		return
	}
	printJSON(ranks)
}
