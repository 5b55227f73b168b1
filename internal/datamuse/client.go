// internal/datamuse/client.go
//
// Client for the Datamuse ranked-word service.
//
// The service answers pattern queries: GET /words?sp=?a??e returns a
// JSON array of {word, score} entries ordered best-first. The engine
// only consumes the rank order; scores are ignored. Entries that are not
// valid five-letter words are silently discarded.
//
// Ranker is the injected capability the rest of the code depends on, so
// the solving paths can be tested with a deterministic fake source.

package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/internal/word"
)

// DefaultBaseURL is the public Datamuse endpoint.
const DefaultBaseURL = "https://api.datamuse.com"

// Ranker supplies ranked candidate words for a confirmed-letter pattern.
// The returned slice is best-first and finite; re-invoke to restart.
type Ranker interface {
	RankedWords(ctx context.Context, pattern word.Pattern) ([]word.Word, error)
}

// Client is the HTTP-backed Ranker.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a Client. An empty baseURL selects the public
// Datamuse endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// rankedEntry matches the service's response shape.
type rankedEntry struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// RankedWords queries /words?sp=<pattern> and returns the valid
// five-letter entries in rank order.
func (c *Client) RankedWords(ctx context.Context, pattern word.Pattern) ([]word.Word, error) {
	q := url.Values{}
	q.Set("sp", pattern.String())
	endpoint := c.baseURL + "/words?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("datamuse: unexpected status %d", res.StatusCode)
	}

	var entries []rankedEntry
	if err := json.NewDecoder(res.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("datamuse: decode response: %w", err)
	}

	out := make([]word.Word, 0, len(entries))
	for _, e := range entries {
		w, err := word.ParseWord(e.Word)
		if err != nil {
			continue // non-5-letter results are expected; skip them
		}
		out = append(out, w)
	}
	log.Debug().Str("pattern", pattern.String()).Int("results", len(out)).Msg("datamuse lookup")
	return out, nil
}
