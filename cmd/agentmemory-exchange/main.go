package main

import (
	"os"

	"github.com/Dennis-Da-Menace/agentmemory-exchange/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
