package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/archiquiz/internal/domain/entities"
	"github.com/ersonp/archiquiz/internal/domain/quiz"
	"github.com/ersonp/archiquiz/internal/domain/services"
)

const playHelp = `Commands:
  :reveal  show the solution
  :next    skip to the next question
  :mode    toggle random / choice / text questions
  :reset   reset the score
  :help    show this help
  :quit    leave the quiz
Type your answer, or the number of an option.`

func newPlayCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the quiz in the terminal",
		Long:  "Asks for the name, architect or era of random catalog buildings and keeps score.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, mode)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Question mode: random, choice or text (default from config)")

	return cmd
}

func runPlay(cmd *cobra.Command, modeFlag string) error {
	var mode entities.Mode
	if modeFlag != "" {
		m, err := entities.ParseMode(modeFlag)
		if err != nil {
			return err
		}
		mode = m
	}

	ctx := cmd.Context()
	return withSession(ctx, mode, func(session *services.SessionService) error {
		return runLoop(ctx, os.Stdin, os.Stdout, session)
	})
}

// runLoop reads answers and commands line by line until :quit, end of input
// or cancellation. After every answer or reveal the next question is asked.
func runLoop(ctx context.Context, in io.Reader, out io.Writer, session *services.SessionService) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "Archiquiz. Type :help for commands.\n")
	printScore(out, session.Stats())
	if err := askNext(out, session); err != nil {
		return err
	}

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case ":quit", ":q":
			fmt.Fprintln(out, "Bye.")
			return nil
		case ":help", ":h":
			fmt.Fprintln(out, playHelp)
		case ":mode", ":m":
			fmt.Fprintf(out, "Mode: %s (from the next question on).\n", session.ToggleMode())
		case ":reset":
			if err := session.ResetStats(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "Score reset.")
			printScore(out, session.Stats())
		case ":next", ":n":
			if err := askNext(out, session); err != nil {
				return err
			}
		case ":reveal", ":r":
			msg, err := session.Reveal()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, msg)
			if err := askNext(out, session); err != nil {
				return err
			}
		default:
			answered, err := answer(ctx, out, session, line)
			if err != nil {
				return err
			}
			if answered {
				printScore(out, session.Stats())
				if err := askNext(out, session); err != nil {
					return err
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// answer judges one line. A number selects an option of a multiple-choice
// question; anything else is judged as typed text. It reports whether the
// question was answered.
func answer(ctx context.Context, out io.Writer, session *services.SessionService, line string) (bool, error) {
	q := session.Current()

	var (
		jd  quiz.Judgement
		err error
	)
	if n, convErr := strconv.Atoi(line); convErr == nil && len(q.Options) > 0 {
		if n < 1 || n > len(q.Options) {
			fmt.Fprintf(out, "Choose a number between 1 and %d.\n", len(q.Options))
			return false, nil
		}
		jd, err = session.AnswerChoice(ctx, q.Options[n-1])
	} else {
		jd, err = session.AnswerText(ctx, line)
	}

	if err != nil && jd.Message == "" {
		return false, err
	}

	fmt.Fprintln(out, jd.Message)
	if err != nil {
		// The answer counted; only saving the score failed.
		fmt.Fprintf(out, "warning: %v\n", err)
	}
	return true, nil
}

func askNext(out io.Writer, session *services.SessionService) error {
	q, err := session.Next()
	if err != nil {
		return err
	}
	printQuestion(out, q)
	return nil
}

func printQuestion(out io.Writer, q *services.Question) {
	b := q.Building.Building
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Image: %s\n", b.Image)
	if b.Credit != "" {
		fmt.Fprintf(out, "Credit: %s\n", b.Credit)
	}
	fmt.Fprintln(out, q.Prompt())
	for i, o := range q.Options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, o)
	}
	fmt.Fprint(out, "> ")
}

func printScore(out io.Writer, s entities.Stats) {
	fmt.Fprintf(out, "Score: %d/%d  Streak: %d  Best: %d\n", s.Score, s.Total, s.Streak, s.BestStreak)
}
