package braid

import "fmt"

// MissingCrossingsForPrimality returns a lower bound on the crossings still
// required before the closure can be prime, i.e. not a connected sum of
// smaller links.
//
// For each interior column i (1 <= i < MaxGenerator) the letters equal to i
// or i+1 are scanned in word order and the number of maximal twist regions
// is counted: a run count, incremented whenever the value changes. A column
// with only two twist regions pins a deficit on strand pair i-1; a column
// with fewer than four pins a deficit on strand pair i. Deficits saturate at
// one per strand pair, and the sum is returned.
//
// Words reached through the search gate always have a contiguous generator
// range starting at 1, so every interior column sees both of its values and
// the run count is at least two. A smaller count means the search state is
// corrupted, which is a programming error, not bad input; it panics with a
// diagnostic rather than returning a bound that silently under-prunes.
func MissingCrossingsForPrimality(w Word) int {
	columns := w.MaxGenerator()
	missing := make([]int, columns)
	for i := 1; i < columns; i++ {
		last := -1
		twistRegions := 0
		for _, v := range w {
			if (v == i || v == i+1) && v != last {
				last = v
				twistRegions++
			}
		}
		if twistRegions < 2 {
			panic(fmt.Sprintf("braid: column %d of %q has %d twist regions; generator range must be contiguous", i, w, twistRegions))
		}
		if twistRegions == 2 && missing[i-1] == 0 {
			missing[i-1] = 1
		}
		if twistRegions < 4 && missing[i] == 0 {
			missing[i] = 1
		}
	}
	total := 0
	for _, m := range missing {
		total += m
	}
	return total
}
