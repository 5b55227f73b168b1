// internal/word/word.go
//
// Letter, Word, and Pattern primitives for the solving engine.
// Responsibilities:
//   - Validate and normalize single letters (exactly one a–z character).
//   - Validate five-letter words and decompose them by position.
//   - Render pattern queries ("?a??e") for the ranked-word lookup.
//
// All three are immutable value types. Validation happens here, at the
// construction boundary; the engine assumes already-validated values.

package word

import (
	"errors"
	"fmt"
	"strings"
)

// Length is the fixed word length the assistant works with.
const Length = 5

// AlphabetSize is the number of letters the engine tracks per position.
const AlphabetSize = 26

var (
	// ErrInvalidLetter reports input that is not exactly one alphabetic character.
	ErrInvalidLetter = errors.New("invalid letter")
	// ErrInvalidWord reports input that is not exactly five alphabetic characters.
	ErrInvalidWord = errors.New("invalid word")
)

// Letter is a single validated lowercase letter ('a'..'z').
// Letters compare and order by character value.
type Letter byte

// ParseLetter validates and normalizes a single-character string.
func ParseLetter(text string) (Letter, error) {
	if len(text) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, text)
	}
	c := text[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'z' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, text)
	}
	return Letter(c), nil
}

// LetterAt returns the letter for an alphabet index 0..25.
func LetterAt(i int) Letter { return Letter('a' + byte(i)) }

// Index maps the letter to 0..25.
func (l Letter) Index() int { return int(l - 'a') }

func (l Letter) String() string { return string(byte(l)) }

// Word is exactly five Letters in position order. Being an array it is
// comparable with == and usable as a map key.
type Word [Length]Letter

// ParseWord validates a five-character string and decomposes it into Letters.
func ParseWord(text string) (Word, error) {
	if len(text) != Length {
		return Word{}, fmt.Errorf("%w: %q", ErrInvalidWord, text)
	}
	var w Word
	for i := 0; i < Length; i++ {
		l, err := ParseLetter(text[i : i+1])
		if err != nil {
			return Word{}, fmt.Errorf("%w: %q", ErrInvalidWord, text)
		}
		w[i] = l
	}
	return w, nil
}

func (w Word) String() string {
	b := make([]byte, Length)
	for i, l := range w {
		b[i] = byte(l)
	}
	return string(b)
}

// Contains reports whether the letter appears at any position.
func (w Word) Contains(l Letter) bool {
	for _, c := range w {
		if c == l {
			return true
		}
	}
	return false
}

// Compare orders words lexicographically (for stable display sorting).
func (w Word) Compare(other Word) int {
	return strings.Compare(w.String(), other.String())
}

// Pattern is a five-slot query where each slot is either a known letter
// or unknown. It is how the engine describes its confirmed letters to an
// external ranked-word source.
type Pattern struct {
	letters [Length]Letter
	known   [Length]bool
}

// NewPattern builds a pattern from per-slot letters and known flags.
func NewPattern(letters [Length]Letter, known [Length]bool) Pattern {
	return Pattern{letters: letters, known: known}
}

// At returns the letter at slot i and whether it is known.
func (p Pattern) At(i int) (Letter, bool) { return p.letters[i], p.known[i] }

// String renders the wildcard query form used by the ranked-word service,
// e.g. "?a??e".
func (p Pattern) String() string {
	b := make([]byte, Length)
	for i := 0; i < Length; i++ {
		if p.known[i] {
			b[i] = byte(p.letters[i])
		} else {
			b[i] = '?'
		}
	}
	return string(b)
}

// Display renders the human-facing form, e.g. "_ a _ _ e".
func (p Pattern) Display() string {
	parts := make([]string, Length)
	for i := 0; i < Length; i++ {
		if p.known[i] {
			parts[i] = p.letters[i].String()
		} else {
			parts[i] = "_"
		}
	}
	return strings.Join(parts, " ")
}
