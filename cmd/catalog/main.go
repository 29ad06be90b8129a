package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/teyvatdex/catalog/cmd/catalog/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Character catalog manager",
		Long:  `Catalog is an interactive command-line manager for game character records with JSON file storage and bulk import from the Genshin character API.`,
		Run: func(cmd *cobra.Command, args []string) {
			commands.RunShell()
		},
	}

	// Add commands
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
