package braid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// readGolden loads one line per record from testdata.
func readGolden(t *testing.T, genus int) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", fmt.Sprintf("genus%d.txt", genus)))
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestRunMatchesGolden(t *testing.T) {
	for genus := 1; genus <= 4; genus++ {
		t.Run(fmt.Sprintf("genus%d", genus), func(t *testing.T) {
			want := readGolden(t, genus)

			var got []string
			e := NewEnumerator(Options{Genus: genus})
			err := e.Run(context.Background(), func(r Record) error {
				got = append(got, r.String())
				return nil
			})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if len(got) != len(want) {
				t.Fatalf("Run() emitted %d records, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("record %d = %q, want %q", i+1, got[i], want[i])
				}
			}
		})
	}
}

func TestRunGenusOne(t *testing.T) {
	records, err := Enumerate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Enumerate() returned %d records, want 1", len(records))
	}
	if got := records[0].String(); got != "aaa: 3 1 4 6 2" {
		t.Errorf("record = %q, want %q", got, "aaa: 3 1 4 6 2")
	}
}

func TestRunEmptyForNonPositiveGenus(t *testing.T) {
	for _, genus := range []int{0, -1} {
		records, err := Enumerate(context.Background(), genus)
		if err != nil {
			t.Errorf("Enumerate(%d) error = %v, want nil", genus, err)
		}
		if len(records) != 0 {
			t.Errorf("Enumerate(%d) returned %d records, want 0", genus, len(records))
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	first, err := Enumerate(context.Background(), 3)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Enumerate(context.Background(), 3)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("runs emitted %d and %d records", len(first), len(second))
	}
	for i := range first {
		if first[i].String() != second[i].String() {
			t.Errorf("record %d differs between runs: %q vs %q", i+1, first[i], second[i])
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewEnumerator(Options{Genus: 5})
	err := e.Run(ctx, func(Record) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRunPropagatesEmitError(t *testing.T) {
	sentinel := errors.New("stop here")
	calls := 0

	e := NewEnumerator(Options{Genus: 3})
	err := e.Run(context.Background(), func(Record) error {
		calls++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("Run() error = %v, want the emit error", err)
	}
	if calls != 1 {
		t.Errorf("emit called %d times after failing, want 1", calls)
	}
}

func TestRecordJSONRoundTrip(t *testing.T) {
	rec := Record{Index: 2, Word: Word{1, 1, 1, 2, 1, 1, 1, 2}, Code: DTCode{6, 8, -12, 2, 14, 16, -4, 10}}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"word":"aaabaaab"`) {
		t.Errorf("JSON = %s, want letter rendering of the word", data)
	}

	var back Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.String() != rec.String() {
		t.Errorf("round trip = %q, want %q", back.String(), rec.String())
	}
}
