// internal/game/round.go
//
// Round wraps a State for front ends that apply one guess per request
// (HTTP) instead of running Game.Play.

package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/hangman/internal/words"
)

// Round is an ID-addressable round for front ends that submit one guess per
// request instead of driving a Player. It starts already in Guessing.
type Round struct {
	ID              string
	MaxWrongGuesses int
	StartedAt       time.Time
	State           State
}

// NewRound starts a round for phrase with a fixed wrong-guess budget.
func NewRound(phrase words.Phrase, maxWrong int) (*Round, error) {
	st, err := NewState(phrase)
	if err != nil {
		return nil, err
	}
	return &Round{
		ID:              uuid.NewString(),
		MaxWrongGuesses: maxWrong,
		StartedAt:       time.Now().UTC(),
		State:           st.Begin(),
	}, nil
}

// Guess applies t and stores the resulting state.
// On error the round is left untouched.
func (r *Round) Guess(t Turn) error {
	next, err := r.State.Apply(t, r.MaxWrongGuesses)
	if err != nil {
		return err
	}
	r.State = next
	return nil
}
