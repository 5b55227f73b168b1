package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-helper/internal/word"
)

func TestParseOutcome(t *testing.T) {
	t.Run("recognizes the three codes", func(t *testing.T) {
		cases := map[string]Outcome{
			"A": NotInWord, "B": WrongSpot, "C": CorrectSpot,
			"a": NotInWord, "b": WrongSpot, "c": CorrectSpot,
		}
		for code, want := range cases {
			got, err := ParseOutcome(code)
			require.NoError(t, err, "code %q", code)
			assert.Equal(t, want, got, "code %q", code)
		}
	})

	t.Run("rejects unknown codes", func(t *testing.T) {
		for _, code := range []string{"", "D", "AB", "1", " "} {
			_, err := ParseOutcome(code)
			assert.ErrorIs(t, err, ErrInvalidOutcomeCode, "code %q", code)
		}
	})

	t.Run("codes round trip", func(t *testing.T) {
		for _, o := range []Outcome{NotInWord, WrongSpot, CorrectSpot} {
			back, err := ParseOutcome(o.Code())
			require.NoError(t, err)
			assert.Equal(t, o, back)
		}
	})
}

func TestParseOutcomes(t *testing.T) {
	t.Run("decodes a full round", func(t *testing.T) {
		out, err := ParseOutcomes("AABaC")
		require.NoError(t, err)
		assert.Equal(t, []Outcome{NotInWord, NotInWord, WrongSpot, NotInWord, CorrectSpot}, out)
	})

	t.Run("requires one code per position", func(t *testing.T) {
		for _, codes := range []string{"", "ABC", "AABACC"} {
			_, err := ParseOutcomes(codes)
			assert.ErrorIs(t, err, ErrInvalidFeedbackLength, "codes %q", codes)
		}
	})

	t.Run("propagates bad codes", func(t *testing.T) {
		_, err := ParseOutcomes("AAXAC")
		assert.ErrorIs(t, err, ErrInvalidOutcomeCode)
	})
}

func TestNew(t *testing.T) {
	w, err := word.ParseWord("crane")
	require.NoError(t, err)

	t.Run("pairs word with outcomes", func(t *testing.T) {
		fb, err := New(w, []Outcome{NotInWord, NotInWord, WrongSpot, NotInWord, CorrectSpot})
		require.NoError(t, err)
		assert.Equal(t, w, fb.Word)
		assert.Equal(t, WrongSpot, fb.Outcomes[2])
	})

	t.Run("rejects wrong outcome counts", func(t *testing.T) {
		_, err := New(w, []Outcome{CorrectSpot})
		assert.ErrorIs(t, err, ErrInvalidFeedbackLength)

		_, err = New(w, make([]Outcome, 6))
		assert.ErrorIs(t, err, ErrInvalidFeedbackLength)
	})
}
