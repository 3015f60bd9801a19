// internal/words/letter_set.go
//
// LetterSet: a 26-bit set of letters used for available, correct and
// wrong guesses.

package words

import (
	"math/bits"
	"strings"
)

// LetterSet is a set of letters packed into the low 26 bits of a uint32.
// The zero value is the empty set. It is a plain value: copying a LetterSet
// copies the set.
type LetterSet struct {
	bits uint32
}

const fullMask = 1<<alphabetSize - 1

// FullSet returns the set of all 26 letters.
func FullSet() LetterSet { return LetterSet{bits: fullMask} }

// NewLetterSet returns a set holding the given letters. Blank and other
// invalid values are ignored.
func NewLetterSet(letters ...Letter) LetterSet {
	var s LetterSet
	for _, l := range letters {
		s.Add(l)
	}
	return s
}

// Add inserts l. Adding Blank is a no-op.
func (s *LetterSet) Add(l Letter) {
	if l.Valid() {
		s.bits |= 1 << l.index()
	}
}

// Remove deletes l if present.
func (s *LetterSet) Remove(l Letter) {
	if l.Valid() {
		s.bits &^= 1 << l.index()
	}
}

// Contains reports whether l is in the set.
func (s LetterSet) Contains(l Letter) bool {
	return l.Valid() && s.bits&(1<<l.index()) != 0
}

// ContainsAll reports whether every letter of other is also in s.
func (s LetterSet) ContainsAll(other LetterSet) bool {
	return other.bits&^s.bits == 0
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int { return bits.OnesCount32(s.bits) }

// IsEmpty reports whether the set has no letters.
func (s LetterSet) IsEmpty() bool { return s.bits == 0 }

// Union returns the letters in either set.
func (s LetterSet) Union(other LetterSet) LetterSet { return LetterSet{bits: s.bits | other.bits} }

// Letters returns the members in alphabetical order.
func (s LetterSet) Letters() []Letter {
	out := make([]Letter, 0, s.Len())
	for i := 0; i < alphabetSize; i++ {
		if s.bits&(1<<i) != 0 {
			out = append(out, Letter('A'+i))
		}
	}
	return out
}

// Strings returns the members as one-letter strings, alphabetically.
func (s LetterSet) Strings() []string {
	letters := s.Letters()
	out := make([]string, len(letters))
	for i, l := range letters {
		out[i] = l.String()
	}
	return out
}

// String joins the members with single spaces, e.g. "A E Q".
func (s LetterSet) String() string {
	return strings.Join(s.Strings(), " ")
}
