package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/archiquiz/internal/application/handlers"
	"github.com/ersonp/archiquiz/internal/domain/entities"
)

func newJudgeCmd() *cobra.Command {
	var (
		kind   string
		choice bool
		reveal bool
	)

	cmd := &cobra.Command{
		Use:   "judge <building-id> [answer]",
		Short: "Judge one answer",
		Long:  "Judges an answer for a catalog building without touching the score.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var answer string
			if len(args) == 2 {
				answer = args[1]
			}
			return runJudge(args[0], answer, kind, choice, reveal)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "name", "Question kind: name, author (architect) or classification (era)")
	cmd.Flags().BoolVar(&choice, "choice", false, "Judge the answer as a selected option (exact after normalization)")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the solution instead of judging")

	return cmd
}

func runJudge(buildingID, answer, kindFlag string, choice, reveal bool) error {
	kind, err := entities.ParseQuestionKind(kindFlag)
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		if reveal {
			msg, err := d.QuestionHandler.Reveal(buildingID, kind)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		}

		jd, err := d.QuestionHandler.Judge(handlers.JudgeRequest{
			BuildingID: buildingID,
			Kind:       kind,
			Answer:     answer,
			Choice:     choice,
		})
		if err != nil {
			return err
		}

		fmt.Println(jd.Message)
		if jd.Rule != "" {
			fmt.Printf("(matched by %s)\n", jd.Rule)
		}
		return nil
	})
}
