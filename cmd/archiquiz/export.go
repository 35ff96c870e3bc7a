package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/archiquiz/internal/domain/entities"
	"github.com/ersonp/archiquiz/internal/infrastructure/parsers"
)

type exportFlags struct {
	format string
	output string
}

type exporter struct {
	format string
	output string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the enriched catalog",
		Long:  "Exports every building with its display strings, accepted answers and explanation to JSON, CSV, or markdown format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(flags exportFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	return withDeps(func(d *Deps) error {
		e := &exporter{
			format: flags.format,
			output: flags.output,
		}
		return e.export(d.Catalog.All())
	})
}

func (e *exporter) export(buildings []entities.EnrichedBuilding) (err error) {
	var w io.Writer
	var f *os.File

	if e.output != "" {
		f, err = os.OpenFile(e.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	} else {
		w = os.Stdout
	}

	if err := e.formatBuildings(w, buildings); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if e.output != "" {
		fmt.Printf("Exported %d buildings to %s\n", len(buildings), e.output)
	}

	return nil
}

func (e *exporter) formatBuildings(w io.Writer, buildings []entities.EnrichedBuilding) error {
	switch e.format {
	case "json":
		return formatJSON(w, buildings)
	case "csv":
		return formatCSV(w, buildings)
	case "markdown":
		return formatMarkdown(w, buildings)
	default:
		return fmt.Errorf("unknown format: %s", e.format)
	}
}

func formatJSON(w io.Writer, buildings []entities.EnrichedBuilding) error {
	type exportKey struct {
		Display string   `json:"display"`
		Answers []string `json:"answers"`
	}
	type exportBuilding struct {
		ID             string    `json:"id"`
		Image          string    `json:"image"`
		Credit         string    `json:"credit,omitempty"`
		Name           exportKey `json:"name"`
		Author         exportKey `json:"author"`
		Classification exportKey `json:"classification"`
		Labels         []string  `json:"labels"`
		Explanation    string    `json:"explanation"`
	}

	out := make([]exportBuilding, 0, len(buildings))
	for i := range buildings {
		b := &buildings[i]
		out = append(out, exportBuilding{
			ID:             b.ID(),
			Image:          b.Building.Image,
			Credit:         b.Building.Credit,
			Name:           exportKey{Display: b.Name.Display, Answers: b.Name.Answers},
			Author:         exportKey{Display: b.Author.Display, Answers: b.Author.Answers},
			Classification: exportKey{Display: b.Classification.Display, Answers: b.Classification.Answers},
			Labels:         b.Labels,
			Explanation:    b.Explanation,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// formatCSV writes one row per building. Answer lists use the catalog list
// separator so the file reads back with the CSV parser.
func formatCSV(w io.Writer, buildings []entities.EnrichedBuilding) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "name", "image", "credit", "architect", "era", "eras", "nameAliases", "architectAliases", "eraAliases", "explanation"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i := range buildings {
		b := &buildings[i]
		row := []string{
			b.ID(),
			b.Name.Display,
			b.Building.Image,
			b.Building.Credit,
			b.Author.Display,
			b.Classification.Display,
			strings.Join(b.Labels, parsers.ListSeparator),
			strings.Join(b.Name.Answers, parsers.ListSeparator),
			strings.Join(b.Author.Answers, parsers.ListSeparator),
			strings.Join(b.Classification.Answers, parsers.ListSeparator),
			b.Explanation,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, buildings []entities.EnrichedBuilding) error {
	if _, err := fmt.Fprintf(w, "# Building Catalog\n\nTotal: %d buildings\n\n", len(buildings)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| ID | Name | Architect | Era | Explanation |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|----|------|-----------|-----|-------------|\n"); err != nil {
		return err
	}

	for i := range buildings {
		b := &buildings[i]
		if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
			escapeMarkdown(b.ID()),
			escapeMarkdown(b.Name.Display),
			escapeMarkdown(b.Author.Display),
			escapeMarkdown(b.Classification.Display),
			escapeMarkdown(b.Explanation),
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
