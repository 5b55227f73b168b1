package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/word"
)

func mustWord(t *testing.T, s string) word.Word {
	t.Helper()
	w, err := word.ParseWord(s)
	require.NoError(t, err)
	return w
}

func mustLetter(t *testing.T, s string) word.Letter {
	t.Helper()
	l, err := word.ParseLetter(s)
	require.NoError(t, err)
	return l
}

// round builds one round of feedback from a guess and its A/B/C codes.
func round(t *testing.T, guess, codes string) feedback.WordOutcome {
	t.Helper()
	outcomes, err := feedback.ParseOutcomes(codes)
	require.NoError(t, err)
	fb, err := feedback.New(mustWord(t, guess), outcomes)
	require.NoError(t, err)
	return fb
}

func letters(t *testing.T, s string) []word.Letter {
	t.Helper()
	out := make([]word.Letter, 0, len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, mustLetter(t, s[i:i+1]))
	}
	return out
}

func TestNewProgress(t *testing.T) {
	p := New()

	assert.Empty(t, p.MustInclude())
	for i := 0; i < word.Length; i++ {
		_, confirmed := p.ConfirmedAt(i)
		assert.False(t, confirmed, "position %d", i)
		assert.Len(t, p.OptionsAt(i), word.AlphabetSize, "position %d", i)
	}
	assert.True(t, p.IsPossibleMatch(mustWord(t, "crane")))
	assert.Equal(t, "?????", p.Pattern().String())
}

func TestUpdateCorrectSpot(t *testing.T) {
	t.Run("confirms the position", func(t *testing.T) {
		p := New()
		p.Update(round(t, "crane", "CAAAA"))

		l, ok := p.ConfirmedAt(0)
		require.True(t, ok)
		assert.Equal(t, mustLetter(t, "c"), l)
		assert.Nil(t, p.OptionsAt(0))
		assert.NotContains(t, p.MustInclude(), mustLetter(t, "c"))
	})

	t.Run("resolves the letter out of must-include", func(t *testing.T) {
		p := New()
		p.Update(round(t, "azzzz", "BAAAA")) // a somewhere, but not first
		require.Contains(t, p.MustInclude(), mustLetter(t, "a"))

		p.Update(round(t, "zazzz", "ACAAA")) // a confirmed second
		assert.NotContains(t, p.MustInclude(), mustLetter(t, "a"))
		l, ok := p.ConfirmedAt(1)
		require.True(t, ok)
		assert.Equal(t, mustLetter(t, "a"), l)
	})
}

func TestUpdateWrongSpot(t *testing.T) {
	t.Run("excludes the position and requires the letter", func(t *testing.T) {
		p := New()
		p.Update(round(t, "crane", "BAAAA"))

		assert.NotContains(t, p.OptionsAt(0), mustLetter(t, "c"))
		assert.Contains(t, p.OptionsAt(1), mustLetter(t, "c"))
		assert.Contains(t, p.MustInclude(), mustLetter(t, "c"))
	})

	t.Run("skips must-include when confirmed elsewhere in the same round", func(t *testing.T) {
		// "speed" with the first e correct and the second in the wrong
		// spot: the correct-spot pass runs first, so the wrong-spot pass
		// already sees the confirmation.
		p := New()
		p.Update(round(t, "speed", "AACBA"))

		l, ok := p.ConfirmedAt(2)
		require.True(t, ok)
		assert.Equal(t, mustLetter(t, "e"), l)
		assert.NotContains(t, p.MustInclude(), mustLetter(t, "e"))
		assert.NotContains(t, p.OptionsAt(3), mustLetter(t, "e"))
	})
}

func TestUpdateNotInWord(t *testing.T) {
	t.Run("excludes the letter from every open position", func(t *testing.T) {
		p := New()
		p.Update(round(t, "crane", "AAAAA"))

		for i := 0; i < word.Length; i++ {
			for _, l := range letters(t, "crane") {
				assert.NotContains(t, p.OptionsAt(i), l, "position %d letter %s", i, l)
			}
			assert.Len(t, p.OptionsAt(i), word.AlphabetSize-5, "position %d", i)
		}
	})

	t.Run("leaves confirmed positions untouched", func(t *testing.T) {
		p := New()
		p.Update(round(t, "crane", "CAAAA"))
		p.Update(round(t, "cloth", "AAAAA")) // c reported absent later

		l, ok := p.ConfirmedAt(0)
		require.True(t, ok)
		assert.Equal(t, mustLetter(t, "c"), l)
	})
}

func TestCollapse(t *testing.T) {
	t.Run("promotes a letter that fits one open position", func(t *testing.T) {
		p := New()
		p.Update(round(t, "azzzz", "BAAAA"))
		p.Update(round(t, "yayyy", "ABAAA"))
		p.Update(round(t, "xxaxx", "AABAA"))
		require.Contains(t, p.MustInclude(), mustLetter(t, "a"))

		// Excluding a from the fourth position leaves only the fifth open.
		p.Update(round(t, "wwwaw", "AAABA"))

		l, ok := p.ConfirmedAt(4)
		require.True(t, ok)
		assert.Equal(t, mustLetter(t, "a"), l)
		assert.NotContains(t, p.MustInclude(), mustLetter(t, "a"))
	})

	t.Run("cascades when a promotion frees another letter", func(t *testing.T) {
		p := New()
		p.Update(round(t, "abzzz", "BBAAA")) // a not first, b not second
		p.Update(round(t, "bayyy", "BBAAA")) // b not first, a not second
		p.Update(round(t, "xxaxx", "AABAA")) // a not third
		p.Update(round(t, "wwbww", "AABAA")) // b not third

		// a fits positions 4-5 and b fits positions 4-5; nothing
		// collapses yet.
		require.Contains(t, p.MustInclude(), mustLetter(t, "a"))
		require.Contains(t, p.MustInclude(), mustLetter(t, "b"))

		// Excluding a from the last position leaves it one slot (4th);
		// promoting it there leaves b a single slot (5th).
		p.Update(round(t, "vvvva", "AAAAB"))

		la, ok := p.ConfirmedAt(3)
		require.True(t, ok)
		assert.Equal(t, mustLetter(t, "a"), la)
		lb, ok := p.ConfirmedAt(4)
		require.True(t, ok)
		assert.Equal(t, mustLetter(t, "b"), lb)
		assert.Empty(t, p.MustInclude())
	})
}

func TestIsPossibleMatch(t *testing.T) {
	t.Run("crane scenario", func(t *testing.T) {
		// Guess "crane": c, r, n absent; a in the wrong spot; e correct
		// at the end.
		p := New()
		p.Update(round(t, "crane", "AABAC"))

		l, ok := p.ConfirmedAt(4)
		require.True(t, ok)
		assert.Equal(t, mustLetter(t, "e"), l)
		assert.Equal(t, []word.Letter{mustLetter(t, "a")}, p.MustInclude())
		assert.Equal(t, "????e", p.Pattern().String())

		assert.True(t, p.IsPossibleMatch(mustWord(t, "abide")))
		assert.True(t, p.IsPossibleMatch(mustWord(t, "abode")))
		assert.True(t, p.IsPossibleMatch(mustWord(t, "agile")))
		assert.False(t, p.IsPossibleMatch(mustWord(t, "crane")), "c is excluded")
		assert.False(t, p.IsPossibleMatch(mustWord(t, "brake")), "r is excluded")
		assert.False(t, p.IsPossibleMatch(mustWord(t, "stale")), "a cannot stay in the third spot")
		assert.False(t, p.IsPossibleMatch(mustWord(t, "guide")), "a is required")
	})

	t.Run("never un-excludes a word", func(t *testing.T) {
		pool := []string{"abide", "abode", "amaze", "stale", "suite", "guide", "pride", "crane"}
		p := New()

		matching := func() map[string]bool {
			out := make(map[string]bool)
			for _, s := range pool {
				if p.IsPossibleMatch(mustWord(t, s)) {
					out[s] = true
				}
			}
			return out
		}

		prev := matching()
		for _, r := range []feedback.WordOutcome{
			round(t, "crane", "AABAC"),
			round(t, "abide", "BCAAC"),
		} {
			p.Update(r)
			cur := matching()
			for s := range cur {
				assert.True(t, prev[s], "word %q reappeared after more feedback", s)
			}
			prev = cur
		}
	})

	t.Run("idempotent between updates", func(t *testing.T) {
		p := New()
		p.Update(round(t, "crane", "AABAC"))

		w := mustWord(t, "abide")
		first := p.IsPossibleMatch(w)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, p.IsPossibleMatch(w))
		}
	})
}

// The engine treats not-in-word as a global exclusion, which diverges
// from strict duplicate-letter rules: guessing "speed" against an answer
// with a single e reports one e correct and the other not-in-word, and
// the global exclusion then purges e from every open position. This is
// intentional; the test pins the simplified behavior.
func TestDuplicateLetterSimplification(t *testing.T) {
	p := New()
	p.Update(round(t, "speed", "AACAA"))

	l, ok := p.ConfirmedAt(2)
	require.True(t, ok)
	assert.Equal(t, mustLetter(t, "e"), l)

	for _, i := range []int{0, 1, 3, 4} {
		assert.NotContains(t, p.OptionsAt(i), mustLetter(t, "e"), "position %d", i)
	}
	// "creek" keeps the confirmed third e but carries a second e at an
	// open position, so the simplified model rejects it.
	assert.False(t, p.IsPossibleMatch(mustWord(t, "creek")))
}
