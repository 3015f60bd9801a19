// internal/httpserver/routes_daily.go
//
// "Phrase of the day": POST /game/daily starts a round whose secret is picked
// deterministically from the dictionary for the current UTC date.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/words"
)

// mountDaily registers the daily route on r.
func (s *Server) mountDaily(r chi.Router) {
	r.Post("/daily", s.handleDaily)
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	word, date := daily.Pick(s.now(), s.cfg.DailySalt, s.dict.Words())
	if word == "" {
		writeError(w, http.StatusServiceUnavailable, "no_words", "dictionary is empty")
		return
	}
	phrase, err := words.ParsePhrase(word)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "invalid_phrase", err.Error())
		return
	}
	s.startRound(w, r, phrase, 0, date)
}

// now is the clock used for daily picks.
func (s *Server) now() time.Time { return time.Now().UTC() }
