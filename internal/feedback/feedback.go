// internal/feedback/feedback.go
//
// Per-round feedback model.
// Defines:
//   - Outcome: the 3-way per-letter result tag (not-in-word / wrong-spot /
//     correct-spot) with its one-character textual codes A/B/C.
//   - WordOutcome: a guessed word plus one Outcome per position, the unit
//     the constraint engine consumes each round.
//
// This package is a pure data carrier; the update algorithm lives in
// internal/progress.

package feedback

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle-helper/internal/word"
)

var (
	// ErrInvalidOutcomeCode reports a code outside the recognized A/B/C tags.
	ErrInvalidOutcomeCode = errors.New("invalid outcome code")
	// ErrInvalidFeedbackLength reports a round that does not carry exactly
	// one outcome per position.
	ErrInvalidFeedbackLength = errors.New("invalid feedback length")
)

// Outcome is the result reported for one letter of one guess.
type Outcome int

const (
	// NotInWord: the letter does not appear in the answer (code "A").
	NotInWord Outcome = iota
	// WrongSpot: the letter appears in the answer but not here (code "B").
	WrongSpot
	// CorrectSpot: the letter is exactly right (code "C").
	CorrectSpot
)

func (o Outcome) String() string {
	switch o {
	case NotInWord:
		return "not-in-word"
	case WrongSpot:
		return "wrong-spot"
	case CorrectSpot:
		return "correct-spot"
	}
	return "unknown"
}

// Code returns the one-character textual encoding of the outcome.
func (o Outcome) Code() string {
	switch o {
	case WrongSpot:
		return "B"
	case CorrectSpot:
		return "C"
	}
	return "A"
}

// ParseOutcome maps a one-character code (case-insensitive) to an Outcome.
func ParseOutcome(code string) (Outcome, error) {
	switch code {
	case "A", "a":
		return NotInWord, nil
	case "B", "b":
		return WrongSpot, nil
	case "C", "c":
		return CorrectSpot, nil
	}
	return NotInWord, fmt.Errorf("%w: %q", ErrInvalidOutcomeCode, code)
}

// ParseOutcomes decodes a full round's codes, e.g. "AABAC".
// The string must carry exactly one code per position.
func ParseOutcomes(codes string) ([]Outcome, error) {
	if len(codes) != word.Length {
		return nil, fmt.Errorf("%w: got %d codes, want %d", ErrInvalidFeedbackLength, len(codes), word.Length)
	}
	out := make([]Outcome, word.Length)
	for i := 0; i < word.Length; i++ {
		o, err := ParseOutcome(codes[i : i+1])
		if err != nil {
			return nil, err
		}
		out[i] = o
	}
	return out, nil
}

// WordOutcome pairs a guessed word with its per-position outcomes for one
// round of feedback.
type WordOutcome struct {
	Word     word.Word
	Outcomes [word.Length]Outcome
}

// New builds a WordOutcome, requiring exactly one outcome per position.
func New(w word.Word, outcomes []Outcome) (WordOutcome, error) {
	if len(outcomes) != word.Length {
		return WordOutcome{}, fmt.Errorf("%w: got %d outcomes, want %d", ErrInvalidFeedbackLength, len(outcomes), word.Length)
	}
	wo := WordOutcome{Word: w}
	copy(wo.Outcomes[:], outcomes)
	return wo, nil
}
