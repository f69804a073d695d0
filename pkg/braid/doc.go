// Package braid enumerates positive braid words whose closures cover all
// prime positive-braid knots of a fixed genus.
//
// # Overview
//
// A positive braid word is a sequence of Artin generators, written here as a
// [Word] of 1-based integers. The closure of such a word is a knot or link
// whose first Betti number b1 = 1 + crossings - strands equals twice the
// genus when the closure is a knot. The [Enumerator] walks the space of
// candidate words with an iterative depth-first search, pruning with four
// simultaneous predicates (see [Admissibility]):
//
//   - the closure can still end up as a single component
//   - enough crossing budget remains to satisfy a primality lower bound
//   - the word is minimal among its cyclic conjugates
//   - the word cannot be shrunk by a braid-like Reidemeister-III move
//     combined with commutations of far-apart generators
//
// The output is a superset: every prime positive-braid knot of the target
// genus appears, but from genus 3 on the same knot can appear under several
// words. Deduplication is left to external tooling that can compare actual
// knot invariants.
//
// # Basic Usage
//
// Create an enumerator and stream records:
//
//	e := braid.NewEnumerator(braid.Options{Genus: 3})
//	err := e.Run(ctx, func(r braid.Record) error {
//	    fmt.Println(r)
//	    return nil
//	})
//
// Each [Record] carries the accepted word and its Dowker-Thistlethwaite code
// (see [Word.DTCode]), a double-occurrence sequence of signed even integers
// with one entry per crossing.
//
// # Determinism
//
// A run is single-threaded and fully deterministic: two runs with the same
// genus produce identical records in identical order. The only way a run
// ends early is context cancellation or an error from the emit callback.
package braid
