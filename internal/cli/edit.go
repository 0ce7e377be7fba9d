package cli

import (
	"github.com/spf13/cobra"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/exchange"
)

func init() {
	cmd := &cobra.Command{
		Use:   "edit [memory-id]",
		Short: "Edit a memory you shared",
		Args:  cobra.ExactArgs(1),
		Run:   runEdit,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("content", "", "New content")
	cmd.Flags().StringP("category", "c", "", "New category")

	RootCmd.AddCommand(cmd)
}

func runEdit(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")
	category, _ := cmd.Flags().GetString("category")
	checkCategory(category)

	result, err := newClient().Edit(cmd.Context(), args[0], exchange.EditParams{
		Title:    title,
		Content:  content,
		Category: category,
	})
	if err != nil {
		exitErr("edit", err)
	}
	finish(result, result.Success)
}
