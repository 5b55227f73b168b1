// prompt.go
//
// Line-based prompt helpers for the interactive commands.
// Every question re-asks until the answer is valid; defaults shown in
// [square brackets] apply when the line is left blank.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/word"
)

// positionNames label the five board positions in prompts.
var positionNames = [word.Length]string{"first", "second", "third", "fourth", "fifth"}

// prompter reads answers line by line from in and writes questions to out.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// line prints the question and returns the trimmed answer ("" on EOF).
func (p *prompter) line(question string) string {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// word re-prompts until the answer parses as a five-letter word.
func (p *prompter) word(question string) word.Word {
	for {
		w, err := word.ParseWord(p.line(question))
		if err == nil {
			return w
		}
		fmt.Fprintln(p.out, "Invalid word. Please try again.")
	}
}

// yesNo asks a Y/N question; blank selects the default.
func (p *prompter) yesNo(question string, def bool) bool {
	hint := "[N]"
	if def {
		hint = "[Y]"
	}
	for {
		switch strings.ToUpper(p.line(question + " (Y: Yes, N: No) " + hint + ": ")) {
		case "":
			return def
		case "Y":
			return true
		case "N":
			return false
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter Y or N.")
	}
}

// outcomes collects one A/B/C code per position of the guess.
// Blank selects A (not in word).
func (p *prompter) outcomes(guess word.Word) feedback.WordOutcome {
	results := make([]feedback.Outcome, 0, word.Length)
	for i, name := range positionNames {
		for {
			answer := p.line(fmt.Sprintf("- %s letter %q (A: Incorrect, B: Wrong spot, C: Correct) [A]: ", name, guess[i].String()))
			if answer == "" {
				answer = "A"
			}
			o, err := feedback.ParseOutcome(answer)
			if err == nil {
				results = append(results, o)
				break
			}
			fmt.Fprintln(p.out, "Invalid input. Please enter A, B, or C.")
		}
	}
	fb, _ := feedback.New(guess, results) // length is correct by construction
	return fb
}
