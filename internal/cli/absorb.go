package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/exchange"
)

func init() {
	cmd := &cobra.Command{
		Use:   "absorb",
		Short: "Pull new trending memories into local notes",
		Long:  "Fetch trending memories, skip the ones already absorbed, and append the rest to the local notes file and archive.",
		Run:   runAbsorb,
	}

	cmd.Flags().IntP("limit", "l", 5, "Max memories to absorb")
	cmd.Flags().StringP("category", "c", "", "Only absorb this category")

	RootCmd.AddCommand(cmd)
}

func runAbsorb(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	category, _ := cmd.Flags().GetString("category")
	checkCategory(category)

	arch, err := openArchive()
	if err != nil {
		exitErr("open archive", err)
	}
	defer arch.Close()

	result, err := newClient(exchange.WithArchive(arch)).AbsorbTrending(cmd.Context(), limit, category)
	if err != nil {
		exitErr("absorb", err)
	}

	if len(result.Absorbed) == 0 {
		fmt.Println("nothing new to absorb")
		return
	}
	for _, m := range result.Absorbed {
		fmt.Printf("absorbed [%s] %s (%s)\n", m.Category, m.Title, m.ID)
	}
}
