package cli

import (
	"github.com/spf13/cobra"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/exchange"
)

func init() {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Register this agent with the exchange",
		Run:   runSetup,
	}

	cmd.Flags().String("name", "", "Agent name (auto-generated if omitted)")
	cmd.Flags().String("description", "", "What does this agent do?")
	cmd.Flags().String("platform", "", "Platform tag (auto-detected if omitted)")
	cmd.Flags().Bool("force", false, "Re-register even if already configured")
	cmd.Flags().Bool("accept-terms", false, "Accept the exchange terms of service")

	RootCmd.AddCommand(cmd)
}

func runSetup(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	platform, _ := cmd.Flags().GetString("platform")
	force, _ := cmd.Flags().GetBool("force")
	acceptTerms, _ := cmd.Flags().GetBool("accept-terms")

	result, err := newClient().Setup(cmd.Context(), exchange.SetupParams{
		Name:        name,
		Description: description,
		Platform:    platform,
		Force:       force,
		AcceptTerms: acceptTerms,
	})
	if err != nil {
		exitErr("setup", err)
	}
	finish(result, result.Success)
}
