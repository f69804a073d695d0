package braid

// Admissibility is the result of the completability gate for a partial word:
// four independent predicates that must all hold for the word, or any
// extension of it, to still be worth exploring. The fields are separate so
// that callers (and the debug trace) can see which predicate pruned a word.
type Admissibility struct {
	// SingleComponent holds when the closure can still end up with one
	// component once the remaining crossing budget is spent. Each extra
	// crossing can merge at most two components.
	SingleComponent bool

	// Prime holds when the primality lower bound fits into the remaining
	// crossing budget.
	Prime bool

	// CyclicMinimal holds when no cyclic conjugate is strictly smaller
	// under the prefix-safe comparison.
	CyclicMinimal bool

	// ReidemeisterReduced holds when no braid-like Reidemeister-III move
	// shrinks the word.
	ReidemeisterReduced bool
}

// OK reports whether all four predicates hold.
func (a Admissibility) OK() bool {
	return a.SingleComponent && a.Prime && a.CyclicMinimal && a.ReidemeisterReduced
}

// CheckAdmissible evaluates the completability gate for a partial word
// against a target first Betti number. Extending a word with the search's
// ascending-priority letters never repairs a failed predicate, so a negative
// result prunes the whole subtree rooted at w.
//
// The word must use a contiguous generator range starting at 1, which the
// search guarantees for every word it gates.
func CheckAdmissible(w Word, targetB1 int) Admissibility {
	remaining := targetB1 - w.BettiNumber()
	return Admissibility{
		SingleComponent:     w.Components()-remaining <= 1,
		Prime:               MissingCrossingsForPrimality(w) <= remaining,
		CyclicMinimal:       CyclicMinimal(w),
		ReidemeisterReduced: ReidemeisterReduced(w),
	}
}
