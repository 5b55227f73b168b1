// internal/progress/progress.go
//
// Constraint state for the solving engine: what is known about each of
// the five positions plus the letters known to appear somewhere.
//
// Responsibilities:
//   - Accumulate one round of feedback at a time (Update), folding the
//     three outcome kinds in a fixed order and then running the
//     must-include collapse pass to a fixed point.
//   - Test an arbitrary word against the accumulated knowledge
//     (IsPossibleMatch) without side effects.
//   - Expose read views for display and for building pattern queries.
//
// Representation:
//   - Each slot is either a confirmed Letter or an open bitset of
//     still-possible letters, cloned per slot from a process-wide
//     full-alphabet constant.
//   - The must-include set is a bitset over the same 26-letter space.
//
// Known simplification: a not-in-word outcome removes the letter from
// every open slot. With repeated letters the real game can report one
// copy correct and another not-in-word; this state machine keeps the
// global exclusion anyway. The test suite pins that behavior.

package progress

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/word"
)

// fullAlphabet is the process-wide 26-letter constant. Built once, never
// mutated; slots clone it on construction.
var fullAlphabet = func() *bitset.BitSet {
	b := bitset.New(word.AlphabetSize)
	for i := 0; i < word.AlphabetSize; i++ {
		b.Set(uint(i))
	}
	return b
}()

// slot is the knowledge for one position: a confirmed letter, or the set
// of letters still possible there. options is nil once confirmed.
type slot struct {
	confirmed bool
	letter    word.Letter
	options   *bitset.BitSet
}

// Progress is the accumulating constraint state for one game.
// Created empty at game start, mutated once per round via Update, and
// queried read-only any number of times via IsPossibleMatch.
type Progress struct {
	slots       [word.Length]slot
	mustInclude *bitset.BitSet
}

// New returns a Progress with every position fully open and an empty
// must-include set.
func New() *Progress {
	p := &Progress{mustInclude: bitset.New(word.AlphabetSize)}
	for i := range p.slots {
		p.slots[i].options = fullAlphabet.Clone()
	}
	return p
}

func bit(l word.Letter) uint { return uint(l.Index()) }

// confirm fixes letter l at position i and resolves it out of the
// must-include set. Idempotent for an already-confirmed slot.
func (p *Progress) confirm(i int, l word.Letter) {
	p.slots[i] = slot{confirmed: true, letter: l}
	p.mustInclude.Clear(bit(l))
}

// confirmedAnywhere reports whether any position is confirmed as l.
func (p *Progress) confirmedAnywhere(l word.Letter) bool {
	for i := range p.slots {
		if p.slots[i].confirmed && p.slots[i].letter == l {
			return true
		}
	}
	return false
}

// Update folds one round of feedback into the state.
//
// The outcome kinds are applied in a fixed relative order — correct-spot,
// then wrong-spot, then not-in-word — so the "already confirmed
// elsewhere" check for wrong-spot letters sees confirmations from the
// same round. The collapse pass runs last, once the round is folded into
// a self-consistent state.
func (p *Progress) Update(fb feedback.WordOutcome) {
	// Correct-spot: fix the letter at its position.
	for i, out := range fb.Outcomes {
		if out == feedback.CorrectSpot {
			p.confirm(i, fb.Word[i])
		}
	}

	// Wrong-spot: the letter is in the word but not here.
	for i, out := range fb.Outcomes {
		if out != feedback.WrongSpot {
			continue
		}
		l := fb.Word[i]
		if s := &p.slots[i]; !s.confirmed {
			s.options.Clear(bit(l))
		}
		if !p.confirmedAnywhere(l) {
			p.mustInclude.Set(bit(l))
		}
	}

	// Not-in-word: exclude the letter from every open position.
	for i, out := range fb.Outcomes {
		if out != feedback.NotInWord {
			continue
		}
		l := fb.Word[i]
		for j := range p.slots {
			if s := &p.slots[j]; !s.confirmed {
				s.options.Clear(bit(l))
			}
		}
	}

	p.collapse()
}

// collapse promotes must-include letters that fit only one remaining open
// position. Each pass computes the full promotion list before applying
// it, then re-scans: confirming one letter can shrink another letter's
// position count to one. Terminates when a pass promotes nothing.
func (p *Progress) collapse() {
	type promotion struct {
		pos int
		l   word.Letter
	}
	for {
		var promos []promotion
		for i, ok := p.mustInclude.NextSet(0); ok; i, ok = p.mustInclude.NextSet(i + 1) {
			l := word.LetterAt(int(i))
			pos, count := -1, 0
			for j := range p.slots {
				s := &p.slots[j]
				if !s.confirmed && s.options.Test(bit(l)) {
					pos, count = j, count+1
				}
			}
			if count == 1 {
				promos = append(promos, promotion{pos: pos, l: l})
			}
		}
		if len(promos) == 0 {
			return
		}
		for _, pr := range promos {
			p.confirm(pr.pos, pr.l)
		}
	}
}

// IsPossibleMatch reports whether w is still consistent with everything
// learned so far. Read-only; safe to call repeatedly between updates.
func (p *Progress) IsPossibleMatch(w word.Word) bool {
	for i, l := range w {
		s := &p.slots[i]
		if s.confirmed {
			if l != s.letter {
				return false
			}
		} else if !s.options.Test(bit(l)) {
			return false
		}
	}
	for i, ok := p.mustInclude.NextSet(0); ok; i, ok = p.mustInclude.NextSet(i + 1) {
		if !w.Contains(word.LetterAt(int(i))) {
			return false
		}
	}
	return true
}

// ConfirmedAt returns the confirmed letter at position i, if any.
func (p *Progress) ConfirmedAt(i int) (word.Letter, bool) {
	s := &p.slots[i]
	return s.letter, s.confirmed
}

// OptionsAt returns the still-possible letters at position i in alphabet
// order. A confirmed position has no options.
func (p *Progress) OptionsAt(i int) []word.Letter {
	s := &p.slots[i]
	if s.confirmed {
		return nil
	}
	return lettersOf(s.options)
}

// MustInclude returns the unresolved must-appear letters in alphabet order.
func (p *Progress) MustInclude() []word.Letter {
	return lettersOf(p.mustInclude)
}

// Pattern returns the confirmed-letter query for the ranked-word lookup.
func (p *Progress) Pattern() word.Pattern {
	var letters [word.Length]word.Letter
	var known [word.Length]bool
	for i := range p.slots {
		if s := &p.slots[i]; s.confirmed {
			letters[i], known[i] = s.letter, true
		}
	}
	return word.NewPattern(letters, known)
}

// String renders the pattern form of the state, e.g. "?a??e".
func (p *Progress) String() string { return p.Pattern().String() }

func lettersOf(b *bitset.BitSet) []word.Letter {
	out := make([]word.Letter, 0, int(b.Count()))
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, word.LetterAt(int(i)))
	}
	return out
}
