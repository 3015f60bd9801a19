// internal/console/player.go
//
// Command-line front end for the hangman engine.
// Responsibilities:
//   - Prompt the setter for a secret phrase and validate it against the dictionary.
//   - Prompt the guesser for a letter or a whole phrase, rejecting repeats.
//   - Print the gallows, the masked phrase and the wrong guesses after every turn.
//   - Ask whether to play another round.
//
// Every prompt re-asks until the input parses, so the engine only ever
// receives valid values. Reaching the end of input is reported as an error.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/robalobadob/hangman/internal/gallows"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

const clearLines = 100

// ErrInputClosed is returned when input ends while waiting for an answer.
var ErrInputClosed = errors.New("input closed")

// Options tunes a console Player.
type Options struct {
	MaxWrongGuesses int    // wrong guesses before the guesser loses
	HiddenMarker    string // shown in place of unguessed letters
	ClearScreen     bool   // push the secret off screen after it is entered
}

var _ game.Replayer = (*Player)(nil)

// Player plays hangman over a line-oriented reader and writer.
type Player struct {
	in   *bufio.Scanner
	out  io.Writer
	dict *words.Dictionary
	opts Options
}

// NewPlayer returns a Player reading answers from in and writing to out.
// A nil dictionary accepts every word.
func NewPlayer(in io.Reader, out io.Writer, dict *words.Dictionary, opts Options) *Player {
	if opts.MaxWrongGuesses <= 0 {
		opts.MaxWrongGuesses = gallows.Stages
	}
	if opts.HiddenMarker == "" {
		opts.HiddenMarker = "-"
	}
	if dict == nil {
		dict = words.NewDictionary(nil)
	}
	return &Player{in: bufio.NewScanner(in), out: out, dict: dict, opts: opts}
}

// PhraseToGuess asks the setter for a secret made of known words.
func (p *Player) PhraseToGuess(ctx context.Context) (words.Phrase, error) {
	phrase, err := ask(ctx, p, "enter a word or phrase for the other player to guess:", func(s string) (words.Phrase, error) {
		ph, err := words.ParsePhrase(s)
		if err != nil {
			return ph, err
		}
		return ph, p.dict.ValidatePhrase(ph)
	})
	if err != nil {
		return words.Phrase{}, err
	}
	if p.opts.ClearScreen {
		p.println(strings.Repeat("\n", clearLines-1))
	}
	return phrase, nil
}

// NextTurn asks the guesser for a letter not yet tried, or a whole phrase.
func (p *Player) NextTurn(ctx context.Context, available words.LetterSet) (game.Turn, error) {
	return ask(ctx, p, "guess a letter, or try to guess the whole phrase:", func(s string) (game.Turn, error) {
		t, err := game.ParseTurn(s)
		if err != nil {
			return t, err
		}
		if t.Kind == game.GuessedLetter && !available.Contains(t.Letter) {
			return t, fmt.Errorf("'%s' has already been guessed", t.Letter)
		}
		return t, nil
	})
}

// MaxWrongGuesses is the configured wrong-guess budget.
func (p *Player) MaxWrongGuesses() int { return p.opts.MaxWrongGuesses }

// DisplayState prints the gallows, masked phrase and wrong guesses.
func (p *Player) DisplayState(s game.State) {
	p.println(gallows.Scaled(s.WrongCount(), p.opts.MaxWrongGuesses))
	p.println(s.Masked(p.opts.HiddenMarker))
	p.println("wrong letters: " + s.WrongLetters.String())

	quoted := s.WrongPhraseStrings()
	slices.Sort(quoted)
	for i, w := range quoted {
		quoted[i] = "'" + w + "'"
	}
	p.println("wrong phrases: " + strings.Join(quoted, ", "))

	if s.Status.IsOver() {
		p.println("GAME OVER!!\n\n" + strings.ToUpper(s.Status.Description()))
	}
}

// PlayAgain asks a y/n question about starting another round.
func (p *Player) PlayAgain(ctx context.Context) (bool, error) {
	return ask(ctx, p, "Do you want to play another game? (y/n)", func(s string) (bool, error) {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		return false, errors.New("reply with either a 'y' or 'n'")
	})
}

// DictionaryFailed tells the user that words will not be validated.
func (p *Player) DictionaryFailed(err error) {
	p.println("dictionary failed to load, will not validate words:\n" + err.Error())
}

func (p *Player) println(s string) {
	fmt.Fprintln(p.out, s)
}

// ask prompts until parse accepts a line, printing each rejection.
func ask[T any](ctx context.Context, p *Player, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		p.println(prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return zero, fmt.Errorf("read input: %w", err)
			}
			return zero, ErrInputClosed
		}
		v, err := parse(p.in.Text())
		if err == nil {
			return v, nil
		}
		p.println(err.Error())
	}
}
