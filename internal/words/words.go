// internal/words/words.go
//
// Candidate word list management for the assistant.
//
// Responsibilities:
//   - Load the candidate pool from an environment-provided file or fall
//     back to the embedded default list.
//   - Parse entries into validated Words, silently dropping anything that
//     is not exactly 5 alphabetic characters.
//   - Supply the pool and counts to the CLI and HTTP surfaces.
//
// Initialization behavior (Init):
//   1. If WORDS_FILE is set, load the pool from that file.
//   2. Otherwise, use the embedded default list from assets.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//
// Constraints:
//   • Words are normalized to lowercase at parse time.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordle-helper/assets"
	"github.com/robalobadob/wordle-helper/internal/word"
)

var (
	initOnce   sync.Once
	pool       []word.Word
	initialErr error
)

// Init loads the candidate pool exactly once.
// Returns an error if the pool ends up empty.
func Init() error {
	initOnce.Do(func() {
		var lines []string
		if path := os.Getenv("WORDS_FILE"); path != "" {
			var err error
			lines, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			var err error
			lines, err = assets.CandidatesList()
			if err != nil {
				initialErr = err
				return
			}
		}

		pool = ParseLines(lines)
		if len(pool) == 0 {
			initialErr = errors.New("words: candidate list is empty")
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// ParseLines converts raw lines into validated Words, trimming and
// lowercasing each entry and dropping anything that fails to parse.
func ParseLines(lines []string) []word.Word {
	out := make([]word.Word, 0, len(lines))
	for _, line := range lines {
		w, err := word.ParseWord(strings.TrimSpace(strings.ToLower(line)))
		if err != nil {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Candidates returns the loaded pool. Callers must not mutate it; the
// filter copies matches into a fresh slice each round.
func Candidates() []word.Word {
	return pool
}

// Stats returns the number of loaded candidate words.
func Stats() int {
	return len(pool)
}
