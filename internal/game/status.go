// internal/game/status.go
//
// Status is the closed set of round states. Starting and Guessing are live;
// the other three are terminal and carry the outcome.

package game

// Status represents where a round is in its lifecycle.
type Status int

const (
	Starting Status = iota
	Guessing
	TooManyWrongGuesses
	GuessedAllLettersCorrectly
	GuessedPhraseCorrectly
)

type statusInfo struct {
	name        string
	over        bool
	won         bool
	description string
}

var statuses = [...]statusInfo{
	Starting:                   {"starting", false, false, "the game has just started"},
	Guessing:                   {"guessing", false, false, "the guessing player is in the process of taking guesses"},
	TooManyWrongGuesses:        {"too_many_wrong_guesses", true, false, "too many wrong guesses! guesser loses"},
	GuessedAllLettersCorrectly: {"guessed_all_letters", true, true, "all letters have been guessed correctly! guesser wins"},
	GuessedPhraseCorrectly:     {"guessed_phrase", true, true, "the phrase was guessed correctly! guesser wins"},
}

func (s Status) info() statusInfo {
	if s < 0 || int(s) >= len(statuses) {
		return statusInfo{name: "unknown"}
	}
	return statuses[s]
}

// IsOver reports whether s is terminal.
func (s Status) IsOver() bool { return s.info().over }

// Won reports whether s is a terminal state in the guesser's favour.
func (s Status) Won() bool { return s.info().won }

// Description is a human-readable sentence for s.
func (s Status) Description() string { return s.info().description }

func (s Status) String() string { return s.info().name }

// MarshalText encodes s by name for JSON views.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
