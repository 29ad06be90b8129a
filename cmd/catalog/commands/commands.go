package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teyvatdex/catalog/internal/adapters/console"
	"github.com/teyvatdex/catalog/internal/adapters/genshin"
	"github.com/teyvatdex/catalog/internal/adapters/storage"
	appcmd "github.com/teyvatdex/catalog/internal/application/commands"
	"github.com/teyvatdex/catalog/internal/infrastructure/config"
	"github.com/teyvatdex/catalog/internal/infrastructure/logger"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive catalog shell",
		Long:  "Start the interactive catalog shell over the configured JSON catalog file",
		Run: func(cmd *cobra.Command, args []string) {
			RunShell()
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print catalog version",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			fmt.Printf("%s v%s\n", cfg.App.Name, cfg.App.Version)
		},
	}
}

// RunShell wires the store, the API client and the command registry together
// and drives the interactive loop until the user exits.
func RunShell() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	store := storage.NewFileStore(cfg.Storage.File, appLogger)
	if err := store.Load(); err != nil {
		appLogger.Fatalw("Failed to load catalog", "file", cfg.Storage.File, "error", err)
	}

	api := genshin.NewClient(cfg.API, appLogger)
	renderer := console.NewRenderer(os.Stdout)
	prompter := console.NewPrompter(os.Stdin, os.Stdout)

	registry := appcmd.NewRegistry()
	registry.Register(appcmd.NewListCommand())
	registry.Register(appcmd.NewAddCommand(prompter))
	registry.Register(appcmd.NewShowCommand())
	registry.Register(appcmd.NewHelpCommand())
	registry.Register(appcmd.NewImportCommand(api, prompter, appLogger))

	dispatcher := appcmd.NewDispatcher(registry, store, renderer, prompter, appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printBanner(cfg.App.Name)
	fmt.Println("Type 'help' for a list of commands")

	appLogger.Infow("catalog shell started",
		"file", cfg.Storage.File,
		"environment", cfg.App.Environment,
	)

	if err := dispatcher.Run(ctx); err != nil {
		appLogger.Fatalw("Shell terminated abnormally", "error", err)
	}
}

func printBanner(name string) {
	fmt.Println()
	fmt.Println("==================================================")
	fmt.Printf("   %s - CHARACTER CATALOG\n", name)
	fmt.Println("==================================================")
}
