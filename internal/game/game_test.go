package game

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/hangman/internal/words"
)

// scriptedPlayer is a test double that replays fixed input and records every display.
type scriptedPlayer struct {
	phrase   string
	turns    []string
	maxWrong int
	again    []bool

	offered   []words.LetterSet
	displayed []State
}

func (p *scriptedPlayer) PhraseToGuess(ctx context.Context) (words.Phrase, error) {
	return words.ParsePhrase(p.phrase)
}

func (p *scriptedPlayer) NextTurn(ctx context.Context, available words.LetterSet) (Turn, error) {
	p.offered = append(p.offered, available)
	if len(p.turns) == 0 {
		return Turn{}, errors.New("script exhausted")
	}
	next := p.turns[0]
	p.turns = p.turns[1:]
	return ParseTurn(next)
}

func (p *scriptedPlayer) MaxWrongGuesses() int { return p.maxWrong }

func (p *scriptedPlayer) DisplayState(s State) { p.displayed = append(p.displayed, s) }

func (p *scriptedPlayer) PlayAgain(ctx context.Context) (bool, error) {
	if len(p.again) == 0 {
		return false, nil
	}
	a := p.again[0]
	p.again = p.again[1:]
	return a, nil
}

func statusesOf(states []State) []Status {
	out := make([]Status, len(states))
	for i, s := range states {
		out[i] = s.Status
	}
	return out
}

func TestPlay_WinByLetters(t *testing.T) {
	p := &scriptedPlayer{phrase: "cat", turns: []string{"c", "z", "a", "t"}, maxWrong: 6}
	g := New(p)

	status, err := g.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if status != GuessedAllLettersCorrectly {
		t.Errorf("expected GuessedAllLettersCorrectly, got %v", status)
	}

	want := []Status{Starting, Guessing, Guessing, Guessing, GuessedAllLettersCorrectly}
	if diff := cmp.Diff(want, statusesOf(p.displayed)); diff != "" {
		t.Errorf("displayed statuses mismatch (-want +got):\n%s", diff)
	}
	if got := p.displayed[0].Masked("-"); got != "---" {
		t.Errorf("expected first display %q, got %q", "---", got)
	}
	if g.State().WrongLetters.String() != "Z" {
		t.Errorf("expected wrong letters Z, got %q", g.State().WrongLetters.String())
	}
}

func TestPlay_OffersShrinkingAlphabet(t *testing.T) {
	p := &scriptedPlayer{phrase: "dog", turns: []string{"d", "o", "g"}, maxWrong: 6}
	if _, err := New(p).Play(context.Background()); err != nil {
		t.Fatal(err)
	}
	got := make([]int, len(p.offered))
	for i, s := range p.offered {
		got[i] = s.Len()
	}
	if diff := cmp.Diff([]int{26, 25, 24}, got); diff != "" {
		t.Errorf("offered alphabet sizes mismatch (-want +got):\n%s", diff)
	}
	if p.offered[1].Contains('D') {
		t.Error("D should no longer be offered after being guessed")
	}
}

func TestPlay_Lose(t *testing.T) {
	p := &scriptedPlayer{phrase: "hangman", turns: []string{"q", "x", "z", "j", "w", "v", "a"}, maxWrong: 6}
	status, err := New(p).Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if status != TooManyWrongGuesses {
		t.Errorf("expected TooManyWrongGuesses, got %v", status)
	}
	if len(p.turns) != 1 {
		t.Errorf("round should stop after the sixth miss; %d turns left, expected 1", len(p.turns))
	}
	last := p.displayed[len(p.displayed)-1]
	if last.Masked("-") != "HANGMAN" {
		t.Errorf("terminal display should reveal the phrase, got %q", last.Masked("-"))
	}
}

func TestPlay_MaxWrongConsultedEachTurn(t *testing.T) {
	p := &scriptedPlayer{phrase: "dog", turns: []string{"q", "x"}, maxWrong: 2}
	status, err := New(p).Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if status != TooManyWrongGuesses {
		t.Errorf("expected TooManyWrongGuesses with a budget of 2, got %v", status)
	}
}

func TestPlay_PlayerErrorPropagates(t *testing.T) {
	p := &scriptedPlayer{phrase: "dog", turns: []string{"d"}, maxWrong: 6}
	_, err := New(p).Play(context.Background())
	if err == nil || err.Error() != "get turn: script exhausted" {
		t.Errorf("expected wrapped script error, got %v", err)
	}
}

func TestPlay_BadPhrase(t *testing.T) {
	p := &scriptedPlayer{phrase: "   ", maxWrong: 6}
	_, err := New(p).Play(context.Background())
	if !errors.Is(err, words.ErrEmptyPhrase) {
		t.Errorf("expected ErrEmptyPhrase, got %v", err)
	}
	if len(p.displayed) != 0 {
		t.Error("nothing should be displayed without a phrase")
	}
}

func TestPlay_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &scriptedPlayer{phrase: "dog", turns: []string{"d"}, maxWrong: 6}
	if _, err := New(p).Play(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPlayUntilQuit(t *testing.T) {
	p := &scriptedPlayer{
		phrase:   "a",
		turns:    []string{"a", "a", "a"},
		maxWrong: 6,
		again:    []bool{true, true, false},
	}
	rounds, err := PlayUntilQuit(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if rounds != 3 {
		t.Errorf("expected 3 rounds, got %d", rounds)
	}
	// Each round starts from a fresh alphabet.
	for i, s := range p.offered {
		if s.Len() != 26 {
			t.Errorf("round %d: expected 26 letters offered, got %d", i+1, s.Len())
		}
	}
}

func TestRound_Guess(t *testing.T) {
	r, err := NewRound(words.MustParsePhrase("dog"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if r.ID == "" || r.State.Status != Guessing {
		t.Fatalf("unexpected new round: %+v", r)
	}
	if err := r.Guess(LetterGuess('Q')); err != nil {
		t.Fatal(err)
	}
	if r.State.Status != TooManyWrongGuesses {
		t.Errorf("expected TooManyWrongGuesses, got %v", r.State.Status)
	}
	if err := r.Guess(LetterGuess('D')); !errors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
	if r.State.Correct.Len() != 0 {
		t.Error("failed guess must not change the round")
	}
}
