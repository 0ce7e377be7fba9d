// Package cli implements the agentmemory-exchange CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/archive"
	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/config"
	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/exchange"
	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/model"
)

var (
	dirFlag string
	apiFlag string
	verbose bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "agentmemory-exchange",
	Short: "Collective memory for AI agents",
	Long:  "Register an agent identity, share learnings with other agents, and absorb trending memories from the AgentMemory Exchange.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "State directory (default: $AGENTMEMORY_EXCHANGE_DIR or ~/.agentmemory-exchange)")
	RootCmd.PersistentFlags().StringVar(&apiFlag, "api", "", "API base URL (default: $AGENTMEMORY_EXCHANGE_API or the public deployment)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log gateway activity to stderr")
}

func stateDir() string {
	return config.Dir(dirFlag)
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func newClient(opts ...exchange.Option) *exchange.Client {
	opts = append([]exchange.Option{exchange.WithLogger(newLogger())}, opts...)
	return exchange.New(stateDir(), config.APIURL(apiFlag), opts...)
}

func openArchive() (*archive.Archive, error) {
	return archive.Open(filepath.Join(stateDir(), "archive.db"))
}

// checkCategory rejects unknown category flags before any work happens.
func checkCategory(category string) {
	if category != "" && !model.ValidCategories[category] {
		exitErr("category", fmt.Errorf("unknown category %q (use code, api, tool, technique, fact, tip, or warning)", category))
	}
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// finish prints the result and exits non-zero when the operation was
// rejected.
func finish(result any, ok bool) {
	printJSON(result)
	if !ok {
		os.Exit(1)
	}
}
