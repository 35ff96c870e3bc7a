package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/archiquiz/internal/domain/entities"
)

func newOptionsCmd() *cobra.Command {
	var (
		kind  string
		count int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "options <building-id>",
		Short: "Print multiple-choice options",
		Long:  "Prints the shuffled options of a multiple-choice question about a building.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptions(cmd, args[0], kind, count, seed)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "name", "Question kind: name, author (architect) or classification (era)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of options (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible order (default from config)")

	return cmd
}

func runOptions(cmd *cobra.Command, buildingID, kindFlag string, count int, seed uint64) error {
	kind, err := entities.ParseQuestionKind(kindFlag)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("count") && count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	return withDeps(func(d *Deps) error {
		if count == 0 {
			count = d.Config.Quiz.OptionCount
		}
		if seed == 0 {
			seed = d.Config.Quiz.Seed
		}

		options, err := d.QuestionHandler.Options(buildingID, kind, count, newRand(seed))
		if err != nil {
			return err
		}

		fmt.Println(kind.Prompt())
		for i, o := range options {
			fmt.Printf("  %d) %s\n", i+1, o)
		}
		return nil
	})
}
