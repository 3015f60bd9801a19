// internal/httpserver/server.go
//
// HTTP front end for the hangman engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Round endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//   - Daily endpoint: POST /game/daily (mounted from routes_daily.go).
//
// Notes:
//   - Each request applies at most one guess; rounds live in a store.Store
//     between requests.
//   - The secret is never sent to the client until the round is over.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/gallows"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

// maxWrongLimit caps client-chosen budgets; more than the alphabet is meaningless.
const maxWrongLimit = 26

var errAlreadyGuessed = errors.New("letter already guessed")

// Server bundles router, round store, dictionary and settings.
type Server struct {
	r     *chi.Mux
	store store.Store
	dict  *words.Dictionary
	cfg   *config.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict *words.Dictionary, cfg *config.Config) *Server {
	s := &Server{r: chi.NewRouter(), store: st, dict: dict, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(accessLog)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(cfg.RequestTimeout))
	s.r.Use(jsonContentType)
	s.r.Use(cors(cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "hangman",
			"endpoints": []string{"/health", "POST /game/new", "POST /game/guess", "GET /game/{id}", "POST /game/daily"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": s.dict.Len(), "rounds": s.store.Len()})
	})

	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Get("/{id}", s.handleGetGame)
		s.mountDaily(r)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one zerolog line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------ GAME ---------------------------------------

// roundView is the client-facing representation of a round.
// Phrase is only filled in once the round is over.
type roundView struct {
	GameID          string      `json:"gameId"`
	Status          game.Status `json:"status"`
	Description     string      `json:"description"`
	Over            bool        `json:"over"`
	Won             bool        `json:"won"`
	Masked          string      `json:"masked"`
	Gallows         string      `json:"gallows"`
	WrongLetters    []string    `json:"wrongLetters"`
	WrongPhrases    []string    `json:"wrongPhrases"`
	WrongCount      int         `json:"wrongCount"`
	Remaining       int         `json:"remaining"`
	MaxWrongGuesses int         `json:"maxWrongGuesses"`
	Available       []string    `json:"available"`
	Phrase          string      `json:"phrase,omitempty"`
	Date            string      `json:"date,omitempty"`
}

func (s *Server) view(r game.Round) roundView {
	st := r.State
	v := roundView{
		GameID:          r.ID,
		Status:          st.Status,
		Description:     st.Status.Description(),
		Over:            st.Status.IsOver(),
		Won:             st.Status.Won(),
		Masked:          st.Masked(s.cfg.HiddenMarker),
		Gallows:         gallows.Scaled(st.WrongCount(), r.MaxWrongGuesses),
		WrongLetters:    st.WrongLetters.Strings(),
		WrongPhrases:    st.WrongPhraseStrings(),
		WrongCount:      st.WrongCount(),
		Remaining:       st.Remaining(r.MaxWrongGuesses),
		MaxWrongGuesses: r.MaxWrongGuesses,
		Available:       st.Available.Strings(),
	}
	if v.Over {
		v.Phrase = st.Phrase.Raw()
	}
	return v
}

// newGameReq is the payload for POST /game/new. Both fields are optional.
type newGameReq struct {
	Phrase          string `json:"phrase"`          // empty picks a random dictionary word
	MaxWrongGuesses int    `json:"maxWrongGuesses"` // zero uses the configured default
}

// handleNewGame validates the secret, starts a round and returns its view.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	if req.MaxWrongGuesses < 0 || req.MaxWrongGuesses > maxWrongLimit {
		writeError(w, http.StatusBadRequest, "bad_max_wrong_guesses", "must be between 1 and 26")
		return
	}

	text := req.Phrase
	if text == "" {
		text = s.dict.Random()
	}
	phrase, err := words.ParsePhrase(text)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_phrase", err.Error())
		return
	}
	if err := s.dict.ValidatePhrase(phrase); err != nil {
		writeError(w, http.StatusBadRequest, "unknown_word", err.Error())
		return
	}
	s.startRound(w, r, phrase, req.MaxWrongGuesses, "")
}

// startRound creates and stores a round, then writes its view.
func (s *Server) startRound(w http.ResponseWriter, r *http.Request, phrase words.Phrase, maxWrong int, date string) {
	if maxWrong == 0 {
		maxWrong = s.cfg.MaxWrongGuesses
	}
	round, err := game.NewRound(phrase, maxWrong)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_phrase", err.Error())
		return
	}
	if err := s.store.Save(r.Context(), round); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	log.Debug().Str("game", round.ID).Int("maxWrong", maxWrong).Msg("round started")

	v := s.view(*round)
	v.Date = date
	writeJSON(w, http.StatusOK, v)
}

// guessReq is the payload for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"` // one letter, or a whole phrase
}

// handleGuess applies one guess to a stored round.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	turn, err := game.ParseTurn(req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_guess", err.Error())
		return
	}

	round, err := s.store.Update(r.Context(), req.GameID, func(rd *game.Round) error {
		if turn.Kind == game.GuessedLetter && !rd.State.Status.IsOver() && !rd.State.Available.Contains(turn.Letter) {
			return errAlreadyGuessed
		}
		return rd.Guess(turn)
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "")
		return
	case errors.Is(err, errAlreadyGuessed):
		writeError(w, http.StatusConflict, "already_guessed", "'"+turn.Letter.String()+"' has already been guessed")
		return
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_finished", "")
		return
	case err != nil:
		log.Error().Err(err).Str("game", req.GameID).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "guess_failed", "")
		return
	}

	log.Debug().
		Str("game", round.ID).
		Stringer("turn", turn).
		Stringer("status", round.State.Status).
		Msg("turn applied")
	writeJSON(w, http.StatusOK, s.view(round))
}

// handleGetGame returns the current view of a round.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	round, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, s.view(round))
}

// ------------------------------- util ---------------------------------------

type errorRes struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorRes{Error: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}
