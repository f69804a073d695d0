package braid

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// ErrNoDTCode is returned by [Word.DTCode] when the closure trace does not
// close up in the expected number of passes. Words accepted by the
// enumeration always encode; arbitrary words need not.
var ErrNoDTCode = errors.New("closure trace does not close up")

// DTCode is a Dowker-Thistlethwaite code: one signed even integer per
// crossing, listed in the order of the odd crossing numbers. The sign records
// which strand passed the crossing on the even visit.
type DTCode []int

// String renders the code as space-separated integers.
func (c DTCode) String() string {
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// crossing accumulates the two visits the closure trace makes to one letter
// of the word: the odd and even crossing numbers, and the side flag of the
// later visit.
type crossing struct {
	odd, even int
	positive  bool
}

// DTCode computes the Dowker-Thistlethwaite code of the word's closure.
//
// The closure is traced strand by strand: a cursor c starts on the outer
// strand, and each letter equal to c or c+1 is a crossing the trace passes
// through, numbered consecutively. A pass over the whole word follows one
// strand of the closure; the trace is complete when the cursor returns to the
// outer strand, which for a one-component closure of a word with contiguous
// generators takes exactly MaxGenerator()+1 passes. Every letter is visited
// twice, once with an odd and once with an even number, and the code pairs
// them: sorted by odd number, each entry is the even number, negated when the
// even visit crossed on the under strand.
//
// Words whose trace needs a different number of passes have more than one
// component or a generator gap; for those DTCode returns [ErrNoDTCode].
func (w Word) DTCode() (DTCode, error) {
	if len(w) == 0 {
		return nil, ErrNoDTCode
	}
	wantPasses := w.MaxGenerator() + 1
	n := make([]crossing, len(w))
	c := 0
	counter := 1
	passed := 0
	for {
		for i, v := range w {
			if v != c && v != c+1 {
				continue
			}
			if counter%2 == 1 {
				n[i].odd = counter
			} else {
				n[i].even = counter
			}
			n[i].positive = (counter%2 == 0) == (v == c)
			counter++
			if v == c+1 {
				c++
			} else {
				c--
			}
		}
		passed++
		if c == 0 {
			break
		}
		if passed >= wantPasses {
			return nil, ErrNoDTCode
		}
	}
	if passed != wantPasses {
		return nil, ErrNoDTCode
	}
	sort.Slice(n, func(i, j int) bool { return n[i].odd < n[j].odd })
	code := make(DTCode, len(n))
	for i, x := range n {
		code[i] = x.even
		if !x.positive {
			code[i] = -code[i]
		}
	}
	return code, nil
}
