package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "interview",
	Short: "AI-powered mock interview practice partner",
	Long:  "Interview-coach conducts scripted mock interviews in the terminal,\nprobes with follow-up questions, and scores your answers at the end.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
