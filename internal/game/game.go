// internal/game/game.go
//
// Game drives one full round against a Player: it asks for the secret,
// then repeatedly asks for a guess, applies it, and pushes the new state
// back out until a terminal status is reached.
//
// The Player owns all user-facing concerns (prompting, re-prompting on bad
// input, rendering). Game only sees already-valid phrases and turns, and it
// never retries: any error from the Player ends the round.

package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/words"
)

// Player is the front end a Game talks to.
type Player interface {
	// PhraseToGuess blocks until the setter supplies a valid secret.
	PhraseToGuess(ctx context.Context) (words.Phrase, error)

	// NextTurn blocks until the guesser supplies one well-formed guess.
	// available holds the letters not guessed yet.
	NextTurn(ctx context.Context, available words.LetterSet) (Turn, error)

	// MaxWrongGuesses is consulted each time a wrong guess is scored.
	MaxWrongGuesses() int

	// DisplayState is called once after the secret is set and once after every turn.
	DisplayState(s State)
}

// Game is a single round. Create one per round with New and call Play once.
type Game struct {
	ID     string
	player Player
	state  State
}

// New returns a game bound to p.
func New(p Player) *Game {
	return &Game{ID: uuid.NewString(), player: p}
}

// State returns the current snapshot.
func (g *Game) State() State { return g.state }

// Play runs the round to completion and returns its terminal status.
func (g *Game) Play(ctx context.Context) (Status, error) {
	phrase, err := g.player.PhraseToGuess(ctx)
	if err != nil {
		return g.state.Status, fmt.Errorf("get phrase: %w", err)
	}
	st, err := NewState(phrase)
	if err != nil {
		return g.state.Status, err
	}
	g.state = st
	log.Debug().Str("game", g.ID).Int("length", phrase.Len()).Msg("round started")
	g.player.DisplayState(g.state)
	g.state = g.state.Begin()

	for !g.state.Status.IsOver() {
		if err := ctx.Err(); err != nil {
			return g.state.Status, err
		}
		turn, err := g.player.NextTurn(ctx, g.state.Available)
		if err != nil {
			return g.state.Status, fmt.Errorf("get turn: %w", err)
		}
		next, err := g.state.Apply(turn, g.player.MaxWrongGuesses())
		if err != nil {
			return g.state.Status, err
		}
		g.state = next
		log.Debug().
			Str("game", g.ID).
			Stringer("turn", turn).
			Stringer("status", g.state.Status).
			Int("wrong", g.state.WrongCount()).
			Msg("turn applied")
		g.player.DisplayState(g.state)
	}

	log.Info().Str("game", g.ID).Stringer("status", g.state.Status).Msg("round finished")
	return g.state.Status, nil
}

// Replayer is a Player that can also be asked whether to start another round.
type Replayer interface {
	Player
	PlayAgain(ctx context.Context) (bool, error)
}

// PlayUntilQuit plays fresh rounds until r declines another one.
// It returns the number of rounds completed.
func PlayUntilQuit(ctx context.Context, r Replayer) (int, error) {
	rounds := 0
	for {
		if _, err := New(r).Play(ctx); err != nil {
			return rounds, err
		}
		rounds++
		again, err := r.PlayAgain(ctx)
		if err != nil {
			return rounds, fmt.Errorf("play again: %w", err)
		}
		if !again {
			return rounds, nil
		}
	}
}
