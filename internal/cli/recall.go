package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/archive"
)

func init() {
	cmd := &cobra.Command{
		Use:   "recall [query]",
		Short: "Search absorbed memories offline",
		Long:  "Search the local archive of absorbed memories. With no query, shows the most recently absorbed.",
		Run:   runRecall,
	}

	cmd.Flags().StringP("category", "c", "", "Filter by category")
	cmd.Flags().IntP("limit", "l", 10, "Max results")

	RootCmd.AddCommand(cmd)
}

func runRecall(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")
	checkCategory(category)

	arch, err := openArchive()
	if err != nil {
		exitErr("open archive", err)
	}
	defer arch.Close()

	query := strings.Join(args, " ")

	var entries []archive.Entry
	if query == "" && category == "" {
		entries, err = arch.Recent(cmd.Context(), limit)
	} else {
		entries, err = arch.Search(cmd.Context(), query, category, limit)
	}
	if err != nil {
		exitErr("recall", err)
	}

	if len(entries) == 0 {
		fmt.Println("[]")
		return
	}
	printJSON(entries)
}
