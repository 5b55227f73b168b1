// cmd_solve.go
//
// The `solve` subcommand: instead of a fixed local list, each round the
// assistant asks the Datamuse ranked-word service for words matching the
// confirmed-letter pattern and suggests the highest-ranked one still
// consistent with all feedback.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-helper/internal/candidates"
	"github.com/robalobadob/wordle-helper/internal/datamuse"
	"github.com/robalobadob/wordle-helper/internal/progress"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Suggest the best next guess using the Datamuse ranked-word service",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := datamuse.NewClient(getEnv("DATAMUSE_URL", datamuse.DefaultBaseURL))
		return runSolve(cmd.Context(), client)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(ctx context.Context, ranker datamuse.Ranker) error {
	p := newPrompter(os.Stdin, os.Stdout)
	state := progress.New()

	fmt.Println("Welcome to wordle-solver!")
	guess := p.word("Enter your first guess into this app: ")
	fmt.Printf("Enter your guess %q into the wordle app.\n", guess.String())

	for round := 1; ; round++ {
		if p.yesNo(fmt.Sprintf("Was your guess %q correct?", guess.String()), false) {
			fmt.Printf("Congratulations, you solved it in %d guesses!\n", round)
			return nil
		}

		fmt.Println("Bummer. Alright, let's try again.")
		fmt.Println("Confirm the letters that you guessed right:")
		state.Update(p.outcomes(guess))

		query := state.Pattern()
		fmt.Printf("Determining the best next guess for pattern %q.\n", query.Display())
		ranked, err := ranker.RankedWords(ctx, query)
		if err != nil {
			log.Error().Err(err).Str("pattern", query.String()).Msg("ranked-word lookup failed")
			return fmt.Errorf("ranked-word lookup: %w", err)
		}

		next, err := candidates.Best(state, ranked)
		if err != nil {
			if errors.Is(err, candidates.ErrNoCandidate) {
				fmt.Println("No consistent word found. The feedback may be contradictory or the vocabulary is exhausted.")
				return nil
			}
			return err
		}

		guess = next
		fmt.Printf("Your next guess should be %q.\n", guess.String())
		fmt.Printf("Enter your next guess %q into the wordle app.\n", guess.String())
	}
}
