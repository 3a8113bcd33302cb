package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parsec",
		Short: "A predictive parser-combinator toolkit",
	}
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "print a parse trace to stderr")

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newCheckCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
