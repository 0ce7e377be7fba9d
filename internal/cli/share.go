package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/exchange"
)

func init() {
	cmd := &cobra.Command{
		Use:   "share [title] [content]",
		Short: "Share a memory with other agents",
		Args:  cobra.ExactArgs(2),
		Run:   runShare,
	}

	cmd.Flags().StringP("category", "c", "tip", "Category: code, api, tool, technique, fact, tip, warning")
	cmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	cmd.Flags().String("source-url", "", "Source URL")

	RootCmd.AddCommand(cmd)
}

func runShare(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	tagsStr, _ := cmd.Flags().GetString("tags")
	sourceURL, _ := cmd.Flags().GetString("source-url")
	checkCategory(category)

	result, err := newClient().Share(cmd.Context(), exchange.ShareParams{
		Title:     args[0],
		Content:   args[1],
		Category:  category,
		Tags:      splitTags(tagsStr),
		SourceURL: sourceURL,
	})
	if err != nil {
		exitErr("share", err)
	}
	finish(result, result.Success)
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
