package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/archiquiz/internal/application/handlers"
	"github.com/ersonp/archiquiz/internal/infrastructure/config"
	"github.com/ersonp/archiquiz/internal/infrastructure/relationaldb/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize archiquiz in the current directory",
		Long:  "Creates a .archiquiz directory with default configuration and the player's score database.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("archiquiz already initialized in %s", cwd)
	}

	statsPath := config.StatsPathForPlayer(cwd, globalPlayer)
	store, err := sqlite.NewRepository(config.SQLiteConfig{Path: statsPath})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer store.Close()

	result, err := handlers.NewInitHandler(store).Handle(ctx, cwd)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", result.ConfigPath)
	fmt.Printf("Created score database: %s\n", statsPath)
	if _, err := os.Stat(result.CatalogPath); err != nil {
		fmt.Printf("Note: catalog %s not found; set catalog.path or use --catalog.\n", result.CatalogPath)
	}
	fmt.Println("Archiquiz initialized successfully!")

	return nil
}
