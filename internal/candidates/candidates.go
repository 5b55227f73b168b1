// internal/candidates/candidates.go
//
// Candidate filtering over a word pool.
//   - Filter keeps the words still consistent with the constraint state,
//     preserving input order; the pool is never mutated.
//   - Best picks the first consistent word from a ranked sequence, for
//     the variant backed by an external ranked-word source.

package candidates

import (
	"errors"

	"github.com/robalobadob/wordle-helper/internal/progress"
	"github.com/robalobadob/wordle-helper/internal/word"
)

// ErrNoCandidate reports a pool or ranked sequence exhausted with no
// consistent word left: either the vocabulary ran out or the accumulated
// feedback is contradictory.
var ErrNoCandidate = errors.New("no consistent candidate found")

// Filter returns the words from pool that still match the state, in
// input order.
func Filter(p *progress.Progress, pool []word.Word) []word.Word {
	out := make([]word.Word, 0, len(pool))
	for _, w := range pool {
		if p.IsPossibleMatch(w) {
			out = append(out, w)
		}
	}
	return out
}

// Best returns the first word in ranked order that matches the state,
// or ErrNoCandidate if the sequence is exhausted.
func Best(p *progress.Progress, ranked []word.Word) (word.Word, error) {
	for _, w := range ranked {
		if p.IsPossibleMatch(w) {
			return w, nil
		}
	}
	return word.Word{}, ErrNoCandidate
}
