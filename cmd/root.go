package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docmind-be",
	Short: "Document study assistant backend",
	Long: `docmind-be serves a single-document study assistant: upload a PDF or
text document, get an automatic summary, ask questions answered with spans
extracted from the document, and practice with generated challenge questions.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
