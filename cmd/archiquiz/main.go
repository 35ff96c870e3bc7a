// Package main provides the entry point for the archiquiz CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version       = "0.1.0-dev"
	globalCatalog string
	globalPlayer  string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:           "archiquiz",
		Short:         "An architecture quiz: name the building, its architect and its era",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalCatalog, "catalog", "c", "", "Catalog file (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&globalPlayer, "player", "p", "", "Player whose score is used (default \"default\")")

	rootCmd.AddCommand(
		newInitCmd(),
		newPlayCmd(),
		newJudgeCmd(),
		newOptionsCmd(),
		newCatalogCmd(),
		newExportCmd(),
		newStatsCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
