package braid

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrEmptyWord is returned by [ParseWord] for an empty input.
	ErrEmptyWord = errors.New("empty braid word")

	// ErrBadLetter is returned by [ParseWord] when the input contains a
	// character outside 'a'..'z'.
	ErrBadLetter = errors.New("braid word letters must be in 'a'..'z'")
)

// Word is a positive braid word: an ordered sequence of 1-based Artin
// generator indices, read left to right. Generator i crosses strands i and
// i+1 positively; there are no inverse crossings in this model.
//
// The letter rendering follows the classical convention of the positive
// braid tables: generator 1 is 'a', generator 2 is 'b', and so on, so the
// trefoil is "aaa".
type Word []int

// ParseWord converts a letter rendering back into a Word.
// Returns ErrEmptyWord or ErrBadLetter for malformed input.
func ParseWord(s string) (Word, error) {
	if s == "" {
		return nil, ErrEmptyWord
	}
	w := make(Word, len(s))
	for i, c := range s {
		if c < 'a' || c > 'z' {
			return nil, fmt.Errorf("%w: %q at position %d", ErrBadLetter, c, i)
		}
		w[i] = int(c-'a') + 1
	}
	return w, nil
}

// String renders the word one letter per generator ('a' = generator 1).
func (w Word) String() string {
	var b strings.Builder
	b.Grow(len(w))
	for _, v := range w {
		b.WriteByte(byte('a' + v - 1))
	}
	return b.String()
}

// Clone returns an independent copy of the word.
func (w Word) Clone() Word {
	return slices.Clone(w)
}

// MaxGenerator returns the largest generator index in the word, or 1 for
// words with no generator above 1 (including the empty word). The floor of 1
// keeps the strand count meaningful for degenerate inputs: an all-ones word
// still braids two strands.
func (w Word) MaxGenerator() int {
	m := 1
	for _, v := range w {
		if v > m {
			m = v
		}
	}
	return m
}

// Strands returns the number of strands the word braids, MaxGenerator()+1.
func (w Word) Strands() int {
	return w.MaxGenerator() + 1
}

// BettiNumber returns the first Betti number of the closure,
// 1 + crossings - strands. For a positive braid closure that is a knot this
// equals twice the genus, which is what the enumeration targets.
func (w Word) BettiNumber() int {
	return 1 + len(w) - w.Strands()
}

// Components returns the number of components of the closure: the word is
// read as a sequence of adjacent transpositions acting on strand positions,
// and the cycles of the resulting permutation are counted. A knot has
// exactly one component.
func (w Word) Components() int {
	if len(w) == 0 {
		return 0
	}
	seen := make([]int, w.Strands())
	count := 0
	for i := 0; i < len(seen); {
		count++
		for seen[i] == 0 {
			seen[i] = count
			pos := i + 1
			for _, v := range w {
				switch v {
				case pos:
					pos++
				case pos - 1:
					pos--
				}
			}
			i = pos - 1
		}
		for i < len(seen) && seen[i] != 0 {
			i++
		}
	}
	return count
}

// overflowsStrands reports whether the final letter opens a strand that
// nothing before it justifies: it exceeds one more than the maximum of the
// preceding letters. Words shorter than two letters never overflow. During
// the search this is the per-position upper bound that triggers backtracking.
func (w Word) overflowsStrands() bool {
	if len(w) < 2 {
		return false
	}
	return w[len(w)-1] > 1+slices.Max(w[:len(w)-1])
}
