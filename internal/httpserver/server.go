// internal/httpserver/server.go
//
// HTTP wiring for the assistant's serve mode.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Session endpoints: POST /session/new, POST /session/feedback,
//     POST /session/suggest, GET /session/{id}.
//   - Exposes the full constraint state after each round: per-position
//     confirmed letter or open-set membership, the must-include set, and
//     the remaining candidates.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - Sessions live in the injected store; the ranked-word source is an
//     injected capability so tests can use a deterministic fake.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/internal/candidates"
	"github.com/robalobadob/wordle-helper/internal/datamuse"
	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/session"
	"github.com/robalobadob/wordle-helper/internal/store"
	"github.com/robalobadob/wordle-helper/internal/word"
	"github.com/robalobadob/wordle-helper/internal/words"
)

// candidateCap bounds how many remaining candidates a response lists.
const candidateCap = 50

// Server bundles router, session store, and the ranked-word source.
type Server struct {
	r      *chi.Mux
	store  store.Store
	ranker datamuse.Ranker
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, ranker datamuse.Ranker) *Server {
	s := &Server{r: chi.NewRouter(), store: st, ranker: ranker}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-helper","endpoints":["/health","POST /session/new","POST /session/feedback","POST /session/suggest","GET /session/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Session endpoints
	s.r.Post("/session/new", s.handleNewSession)
	s.r.Post("/session/feedback", s.handleFeedback)
	s.r.Post("/session/suggest", s.handleSuggest)
	s.r.Get("/session/{id}", s.handleGetSession)

	// Debug: candidate pool count
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"candidates": words.Stats()})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ views --------------------------------------

// positionView is per-position knowledge: either a confirmed letter or the
// still-possible options rendered as a string of letters.
type positionView struct {
	Confirmed string `json:"confirmed,omitempty"`
	Options   string `json:"options,omitempty"`
}

// stateView is the full constraint state plus the remaining candidates.
type stateView struct {
	SessionID   string                    `json:"sessionId"`
	Rounds      int                       `json:"rounds"`
	Pattern     string                    `json:"pattern"`
	Positions   [word.Length]positionView `json:"positions"`
	MustInclude string                    `json:"mustInclude"`
	Remaining   int                       `json:"remaining"`
	Candidates  []string                  `json:"candidates"`
}

// viewOf renders a session into its response shape.
func viewOf(s *session.Session) stateView {
	v := stateView{
		SessionID: s.ID,
		Rounds:    s.Rounds,
		Pattern:   s.Progress.Pattern().String(),
		Remaining: len(s.Pool),
	}
	for i := 0; i < word.Length; i++ {
		if l, ok := s.Progress.ConfirmedAt(i); ok {
			v.Positions[i].Confirmed = l.String()
		} else {
			v.Positions[i].Options = lettersString(s.Progress.OptionsAt(i))
		}
	}
	v.MustInclude = lettersString(s.Progress.MustInclude())
	n := len(s.Pool)
	if n > candidateCap {
		n = candidateCap
	}
	v.Candidates = make([]string, 0, n)
	for _, w := range s.Pool[:n] {
		v.Candidates = append(v.Candidates, w.String())
	}
	return v
}

func lettersString(ls []word.Letter) string {
	b := make([]byte, 0, len(ls))
	for _, l := range ls {
		b = append(b, byte(l))
	}
	return string(b)
}

// ----------------------------- SESSION --------------------------------------

// newSessionReq/Res payloads for POST /session/new.
type newSessionReq struct {
	Words []string `json:"words"` // optional custom pool; defaults to the loaded list
}

// handleNewSession creates a new in-memory solving session.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	pool := words.Candidates()
	if len(req.Words) > 0 {
		pool = words.ParseLines(req.Words)
	}
	if len(pool) == 0 {
		http.Error(w, `{"error":"empty_pool"}`, http.StatusBadRequest)
		return
	}

	sess := session.New(pool)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(sess))
}

// feedbackReq payload for POST /session/feedback.
// Outcomes is one code per position: A=not-in-word, B=wrong-spot,
// C=correct-spot (case-insensitive), e.g. "AABAC".
type feedbackReq struct {
	SessionID string `json:"sessionId"`
	Guess     string `json:"guess"`
	Outcomes  string `json:"outcomes"`
}

// handleFeedback applies one round of feedback to a session and returns
// the updated constraint state and remaining candidates.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	guess, err := word.ParseWord(req.Guess)
	if err != nil {
		http.Error(w, `{"error":"invalid_word"}`, http.StatusBadRequest)
		return
	}
	outcomes, err := feedback.ParseOutcomes(req.Outcomes)
	if err != nil {
		if errors.Is(err, feedback.ErrInvalidOutcomeCode) {
			http.Error(w, `{"error":"invalid_outcome_code"}`, http.StatusBadRequest)
			return
		}
		http.Error(w, `{"error":"invalid_feedback_length"}`, http.StatusBadRequest)
		return
	}
	fb, err := feedback.New(guess, outcomes)
	if err != nil {
		http.Error(w, `{"error":"invalid_feedback_length"}`, http.StatusBadRequest)
		return
	}

	sess.ApplyFeedback(fb)
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(sess))
}

// suggestReq/Res payloads for POST /session/suggest.
type suggestReq struct {
	SessionID string `json:"sessionId"`
}
type suggestRes struct {
	Word string `json:"word"`
}

// handleSuggest asks the ranked-word source for the best next guess that
// is still consistent with the session's constraint state.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	best, err := sess.Suggest(r.Context(), s.ranker)
	if err != nil {
		if errors.Is(err, candidates.ErrNoCandidate) {
			http.Error(w, `{"error":"no_candidate"}`, http.StatusNotFound)
			return
		}
		log.Warn().Err(err).Str("sessionId", sess.ID).Msg("ranked lookup failed")
		http.Error(w, `{"error":"ranking_unavailable"}`, http.StatusBadGateway)
		return
	}
	_ = json.NewEncoder(w).Encode(suggestRes{Word: best.String()})
}

// handleGetSession returns the current constraint state for a session.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(sess))
}
