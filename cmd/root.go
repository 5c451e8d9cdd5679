package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is shared by all subcommands and set once in Execute.
var logger *zap.Logger

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "codeindex",
	Short: "Codeindex is a CLI tool for snapshotting codebases",
	Long:  `Codeindex produces LLM-readable snapshots of a source tree and editor path-resolution configs, designed for workflows like ChatGPT input preparation.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(l *zap.Logger) error {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
	return RootCmd.Execute()
}
