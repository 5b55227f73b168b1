// cmd_helper.go
//
// The `helper` subcommand: interactive assistant over a fixed local word
// list. Each round the user enters their guess and the per-position
// feedback codes; the assistant folds the feedback into the constraint
// state and prints the shrinking candidate pool.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-helper/internal/session"
	"github.com/robalobadob/wordle-helper/internal/words"
)

var helperCmd = &cobra.Command{
	Use:   "helper",
	Short: "Filter a local word list from round-by-round feedback",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := words.Init(); err != nil {
			return fmt.Errorf("load word list: %w", err)
		}
		return runHelper()
	},
}

func init() {
	rootCmd.AddCommand(helperCmd)
}

func runHelper() error {
	p := newPrompter(os.Stdin, os.Stdout)
	sess := session.New(words.Candidates())
	log.Debug().Str("sessionId", sess.ID).Int("pool", len(sess.Pool)).Msg("helper session started")

	fmt.Println("Welcome to wordle-helper!")
	fmt.Println("When entering information, [square brackets] represents the default if you leave it blank.")

	for round := 1; ; round++ {
		guess := p.word("Enter your next guess: ")
		if p.yesNo(fmt.Sprintf("Was your guess %q correct?", guess.String()), false) {
			sess.MarkSolved()
			fmt.Printf("Congratulations, you solved it in %d guesses!\n", round)
			return nil
		}

		fmt.Println("Bummer. Alright, let's try again.")
		fmt.Println("Confirm the letters that you guessed right:")
		fb := p.outcomes(guess)

		fmt.Println("Crunching the letters...")
		remaining := sess.ApplyFeedback(fb)
		printInfo(os.Stdout, sess.Progress, remaining)
		if len(remaining) == 0 {
			fmt.Println("No consistent word found. The feedback may be contradictory or the word is not in the list.")
			return nil
		}
	}
}
