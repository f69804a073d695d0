package braid

import (
	"errors"
	"slices"
	"testing"
)

func TestDTCode(t *testing.T) {
	tests := []struct {
		word string
		want DTCode
	}{
		{"aaa", DTCode{4, 6, 2}},
		{"aaaaa", DTCode{6, 8, 10, 2, 4}},
		{"ab", DTCode{4, -2}},
		{"aababb", DTCode{6, 12, -10, 2, -4, -8}},
		{"aaabaaab", DTCode{6, 8, -12, 2, 14, 16, -4, 10}},
	}

	for _, tt := range tests {
		w, err := ParseWord(tt.word)
		if err != nil {
			t.Fatalf("ParseWord(%q): %v", tt.word, err)
		}
		got, err := w.DTCode()
		if err != nil {
			t.Errorf("DTCode(%q) error = %v, want nil", tt.word, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("DTCode(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestDTCodeNotClosing(t *testing.T) {
	tests := []Word{
		nil,            // empty
		{1, 2, 1},      // two components, trace closes too early
		{1, 1},         // Hopf link
		{1, 3, 1, 3},   // generator gap
	}

	for _, w := range tests {
		if _, err := w.DTCode(); !errors.Is(err, ErrNoDTCode) {
			t.Errorf("DTCode(%v) error = %v, want ErrNoDTCode", w, err)
		}
	}
}

func TestDTCodeString(t *testing.T) {
	c := DTCode{6, -12, 2}
	if got := c.String(); got != "6 -12 2" {
		t.Errorf("String() = %q, want %q", got, "6 -12 2")
	}
	if got := (DTCode{}).String(); got != "" {
		t.Errorf("String() of empty code = %q, want \"\"", got)
	}
}

// Accepted words always produce a code whose absolute values are a
// permutation of the even numbers 2..2n.
func TestDTCodeIsDoubleOccurrence(t *testing.T) {
	words := []string{"aaa", "aaaaa", "aababb", "aaabaaab"}
	for _, s := range words {
		w, _ := ParseWord(s)
		code, err := w.DTCode()
		if err != nil {
			t.Fatalf("DTCode(%q): %v", s, err)
		}
		seen := make(map[int]bool)
		for _, v := range code {
			if v < 0 {
				v = -v
			}
			if v%2 != 0 || v < 2 || v > 2*len(w) || seen[v] {
				t.Errorf("DTCode(%q) = %v, not a permutation of evens 2..%d", s, code, 2*len(w))
				break
			}
			seen[v] = true
		}
	}
}
