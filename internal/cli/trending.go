package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show the top-voted memories right now",
		Run:   runTrending,
	}

	cmd.Flags().IntP("limit", "l", 10, "Max results")

	RootCmd.AddCommand(cmd)
}

func runTrending(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	results := newClient().Trending(cmd.Context(), limit)
	if len(results) == 0 {
		fmt.Println("[]")
		return
	}
	for i, m := range results {
		fmt.Printf("%d. [%+d] %s (%s)\n", i+1, m.Score, m.Title, m.ID)
	}
}
