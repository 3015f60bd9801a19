// Package gallows draws the hangman picture for a given number of wrong guesses.
package gallows

import "strings"

// Stages is how many body parts the picture has.
const Stages = 6

// template marks each body part with the stage (1..6) at which it appears.
const template = "" +
	" +-----+\n" +
	" |     |\n" +
	" 1     |\n" +
	"324    |\n" +
	"5 6    |\n" +
	"       |\n" +
	" ============\n"

var parts = [Stages]string{"O", "|", `\`, "/", "/", `\`}

// Draw renders the picture with one body part per wrong guess, capped at Stages.
func Draw(wrong int) string {
	var r []string
	for i := 1; i <= Stages; i++ {
		part := " "
		if wrong >= i {
			part = parts[i-1]
		}
		r = append(r, string(rune('0'+i)), part)
	}
	return strings.NewReplacer(r...).Replace(template)
}

// Scaled renders the picture for wrong out of maxWrong guesses, so that the
// figure is complete exactly when the budget is spent whatever its size.
func Scaled(wrong, maxWrong int) string {
	if maxWrong <= 0 || maxWrong == Stages {
		return Draw(wrong)
	}
	if wrong >= maxWrong {
		return Draw(Stages)
	}
	return Draw(wrong * Stages / maxWrong)
}
