package braid

import "slices"

// CyclicMinimal reports whether the word is the lexicographic minimum among
// its cyclic conjugates, using the prefix-safe comparison the search relies
// on: for every split point k the suffix w[k:] is compared against the
// prefix of the same length, and any strictly smaller suffix fails.
//
// Ties are deliberately not broken by wrapping around. A strictly smaller
// suffix stays strictly smaller under any extension of the word, so the
// predicate can prune partial words; the wrapped comparison cannot. The
// price is that bordered words such as "aabaabba" pass even though a full
// rotation of them is smaller, which is why the final list may contain the
// same knot under several words.
func CyclicMinimal(w Word) bool {
	n := len(w)
	for k := 1; k < n; k++ {
		if slices.Compare(w[k:], w[:n-k]) < 0 {
			return false
		}
	}
	return true
}

// ReidemeisterReduced reports whether the word resists the one local
// rewrite the search rules out: a braid-like Reidemeister-III move, combined
// with commutations of far-apart generators, that would produce a
// lexicographically smaller word.
//
// Let s be the last letter. Generators differing from s by more than one act
// on disjoint strand pairs and commute past s, so the scan walks backward
// skipping them. If the nearest non-commuting letter is s-1 and the next
// non-commuting letter behind it is s again, the tail matches the pattern
// s ... s-1 ... s and the braid relation rewrites it smaller; the word is
// rejected. Every other outcome passes.
func ReidemeisterReduced(w Word) bool {
	s := w[len(w)-1]
	i := len(w) - 2
	for i >= 0 && (w[i] < s-1 || w[i] > s+1) {
		i--
	}
	if i < 0 || w[i] == s || w[i] == s+1 {
		return true
	}
	for i--; i >= 0 && (w[i] < s-1 || w[i] > s+1); i-- {
	}
	return i < 0 || w[i] == s-1 || w[i] == s+1
}
