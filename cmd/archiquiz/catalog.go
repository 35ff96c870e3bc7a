package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/archiquiz/internal/domain/entities"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the building catalog",
		Long: `Inspect the loaded and enriched building catalog.

Examples:
  archiquiz catalog list
  archiquiz catalog show petersdom
  archiquiz --catalog data/buildings.csv catalog list`,
	}

	cmd.AddCommand(newCatalogListCmd(), newCatalogShowCmd())

	return cmd
}

func newCatalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all buildings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				buildings := d.Catalog.All()
				fmt.Printf("Buildings (%d total):\n", len(buildings))
				for i := range buildings {
					b := &buildings[i]
					fmt.Printf("  %-24s %s | %s | %s\n", b.ID(), b.Name.Display, b.Author.Display, b.Classification.Display)
				}
				return nil
			})
		},
	}
}

func newCatalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <building-id>",
		Short: "Show a building with its accepted answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				b, ok := d.Catalog.Find(args[0])
				if !ok {
					return fmt.Errorf("building not found: %s", args[0])
				}
				displayBuilding(os.Stdout, b)
				return nil
			})
		},
	}
}

func displayBuilding(w io.Writer, b *entities.EnrichedBuilding) {
	fmt.Fprintf(w, "ID: %s\n", b.ID())
	fmt.Fprintf(w, "  Image: %s\n", b.Building.Image)
	if b.Building.Credit != "" {
		fmt.Fprintf(w, "  Credit: %s\n", b.Building.Credit)
	}
	for _, kind := range []entities.QuestionKind{entities.KindName, entities.KindAuthor, entities.KindClassification} {
		key, _ := b.Key(kind)
		fmt.Fprintf(w, "  %s: %s\n", kind, key.Display)
		fmt.Fprintf(w, "    accepted: %s\n", strings.Join(key.Answers, " | "))
	}
	fmt.Fprintf(w, "  Explanation: %s\n", b.Explanation)
}
