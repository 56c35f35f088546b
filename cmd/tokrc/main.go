package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tokrc",
		Short: "Replace @key@ placeholder tokens in file trees",
		Long: `tokrc rewrites @prefix.key@ (or bare @key@) placeholder tokens in text
files from a merged replacement table. Unknown or malformed tokens are
removed from the output and reported with file, line and surrounding
context so a build surfaces every problem in one pass.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	addRootFlags(rootCmd)
	rootCmd.AddCommand(newApplyCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
