// internal/session/session.go
//
// Solving session for a single game.
// Responsibilities:
//   - Bundle the constraint state with the remaining candidate pool.
//   - Apply one round of feedback at a time and refilter the pool.
//   - Suggest the next guess from a ranked-word source.
//
// Notes:
//   - The pool is owned by the session; the caller's slice is copied on
//     construction and never mutated afterwards.
//   - randomID() is a compact hex identifier for correlating server state.

package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/robalobadob/wordle-helper/internal/candidates"
	"github.com/robalobadob/wordle-helper/internal/datamuse"
	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/progress"
	"github.com/robalobadob/wordle-helper/internal/word"
)

// Session holds the state of one assisted game.
type Session struct {
	ID       string             // Unique session identifier (random hex string).
	Progress *progress.Progress // Accumulated constraint state.
	Pool     []word.Word        // Remaining consistent candidates, input order.
	Rounds   int                // Feedback rounds applied so far.
	Solved   bool               // True once the caller reports a win.
}

// New constructs a session over a candidate pool.
func New(pool []word.Word) *Session {
	owned := make([]word.Word, len(pool))
	copy(owned, pool)
	return &Session{
		ID:       randomID(),
		Progress: progress.New(),
		Pool:     owned,
	}
}

// ApplyFeedback folds one round of feedback into the constraint state and
// refilters the pool. Returns the remaining candidates.
func (s *Session) ApplyFeedback(fb feedback.WordOutcome) []word.Word {
	s.Progress.Update(fb)
	s.Pool = candidates.Filter(s.Progress, s.Pool)
	s.Rounds++
	return s.Pool
}

// Suggest queries the ranked-word source for the current confirmed-letter
// pattern and returns the best still-consistent word.
// Returns candidates.ErrNoCandidate when the ranking is exhausted.
func (s *Session) Suggest(ctx context.Context, ranker datamuse.Ranker) (word.Word, error) {
	ranked, err := ranker.RankedWords(ctx, s.Progress.Pattern())
	if err != nil {
		return word.Word{}, err
	}
	return candidates.Best(s.Progress, ranked)
}

// MarkSolved records that the caller reported a winning guess.
func (s *Session) MarkSolved() { s.Solved = true }

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
