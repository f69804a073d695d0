// Package interlace builds interlacement graphs from Dowker-Thistlethwaite
// codes.
//
// A DT code describes a closed curve visiting 2n points on a circle; each
// crossing is a chord connecting an odd point to an even point. Two chords
// interlace when they cross inside the circle, i.e. exactly one endpoint of
// one lies between the endpoints of the other. The interlacement graph has
// one vertex per crossing and one edge per interlacing pair; for the trefoil
// it is the triangle.
//
// The graph can be rendered to DOT, SVG, or PNG via Graphviz (see [ToDOT],
// [RenderSVG], [RenderPNG]).
package interlace

import (
	"github.com/braidkit/braidkit/pkg/braid"
	"github.com/braidkit/braidkit/pkg/errors"
)

// Chord is one crossing of the diagram: the odd and even point it connects
// on the circle, and whether the even visit passed on the under strand.
type Chord struct {
	Odd   int
	Even  int
	Under bool
}

// Diagram is the chord diagram of a DT code.
type Diagram struct {
	chords []Chord
}

// FromDTCode builds the chord diagram of a DT code. The j-th entry pairs
// odd point 2j+1 with the entry's absolute value; the code must be a
// permutation of the even numbers 2..2n up to sign.
func FromDTCode(code braid.DTCode) (*Diagram, error) {
	n := len(code)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty DT code")
	}
	seen := make([]bool, n+1)
	chords := make([]Chord, n)
	for j, v := range code {
		even := v
		under := false
		if even < 0 {
			even = -even
			under = true
		}
		if even%2 != 0 || even < 2 || even > 2*n || seen[even/2] {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"DT code entry %d: %d is not a fresh even number in 2..%d", j, v, 2*n)
		}
		seen[even/2] = true
		chords[j] = Chord{Odd: 2*j + 1, Even: even, Under: under}
	}
	return &Diagram{chords: chords}, nil
}

// FromWord traces a braid word's closure and builds the diagram of its code.
func FromWord(w braid.Word) (*Diagram, error) {
	code, err := w.DTCode()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncoding, err, "encoding %q", w)
	}
	return FromDTCode(code)
}

// Chords returns the chords in code order.
func (d *Diagram) Chords() []Chord {
	return d.chords
}

// Size returns the number of crossings.
func (d *Diagram) Size() int {
	return len(d.chords)
}

// interlaces reports whether two chords cross inside the circle.
func interlaces(a, b Chord) bool {
	a1, a2 := order(a)
	b1, b2 := order(b)
	return (a1 < b1 && b1 < a2 && a2 < b2) || (b1 < a1 && a1 < b2 && b2 < a2)
}

func order(c Chord) (lo, hi int) {
	if c.Odd < c.Even {
		return c.Odd, c.Even
	}
	return c.Even, c.Odd
}

// Edges returns the interlacement edges as index pairs (i < j) into Chords.
func (d *Diagram) Edges() [][2]int {
	var edges [][2]int
	for i := 0; i < len(d.chords); i++ {
		for j := i + 1; j < len(d.chords); j++ {
			if interlaces(d.chords[i], d.chords[j]) {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges
}
