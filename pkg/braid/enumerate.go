package braid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/braidkit/braidkit/pkg/errors"
	"github.com/braidkit/braidkit/pkg/observability"
)

// Record is one accepted word of an enumeration run.
type Record struct {
	// Index is the 1-based position of the record within its run.
	Index int

	// Word is the accepted braid word.
	Word Word

	// Code is the Dowker-Thistlethwaite code of the closure.
	Code DTCode
}

// String renders the record in the table format: the word's letters, then
// after a colon the crossing number, the index, and the code entries.
//
//	aaa: 3 1 4 6 2
func (r Record) String() string {
	return fmt.Sprintf("%s: %d %d %s", r.Word, len(r.Word), r.Index, r.Code)
}

// recordJSON is the wire shape of a Record: the word travels as its letter
// rendering, and the crossing number is included for convenience.
type recordJSON struct {
	Index     int    `json:"index"`
	Word      string `json:"word"`
	Crossings int    `json:"crossings"`
	DT        DTCode `json:"dt"`
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Index:     r.Index,
		Word:      r.Word.String(),
		Crossings: len(r.Word),
		DT:        r.Code,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Record) UnmarshalJSON(data []byte) error {
	var rj recordJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return err
	}
	w, err := ParseWord(rj.Word)
	if err != nil {
		return err
	}
	r.Index = rj.Index
	r.Word = w
	r.Code = rj.DT
	return nil
}

// Options configures an [Enumerator].
type Options struct {
	// Genus is the target genus. The search covers all prime positive-braid
	// knots whose Seifert genus equals this value. Values below 1 produce an
	// empty run: there are no positive braid knots of genus zero besides the
	// unknot, which is not prime.
	Genus int `json:"genus"`

	// Logger receives the debug trace of the search. Nil discards it.
	Logger *log.Logger `json:"-"`
}

// Enumerator walks the space of positive braid words of one genus.
// Create one with [NewEnumerator]; the zero value is not usable.
type Enumerator struct {
	opts   Options
	logger *log.Logger
}

// NewEnumerator returns an enumerator for the given options.
func NewEnumerator(opts Options) *Enumerator {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Enumerator{opts: opts, logger: logger}
}

// checkEvery is how many search steps pass between context checks. The step
// body is a handful of integer scans, so checking on every step would cost
// more than the work it guards.
const checkEvery = 1024

// Run executes the search and calls emit for every accepted word, in
// search order. Records are emitted as they are found; two runs with the
// same genus emit identical records in identical order.
//
// Run returns the context error if ctx is cancelled, the first error
// returned by emit, or nil when the search space is exhausted. The Record
// passed to emit owns its Word and Code; they are never mutated afterwards.
func (e *Enumerator) Run(ctx context.Context, emit func(Record) error) (err error) {
	target := 2 * e.opts.Genus
	start := time.Now()
	count := 0
	observability.Enumeration().OnSearchStart(ctx, e.opts.Genus)
	defer func() {
		observability.Enumeration().OnSearchComplete(ctx, e.opts.Genus, count, time.Since(start), err)
	}()

	if target <= 0 {
		e.logger.Debug("nothing to search", "genus", e.opts.Genus)
		return nil
	}

	e.logger.Debug("search started", "genus", e.opts.Genus, "target_b1", target)

	// The word is grown and shrunk in place; only accepted words are cloned.
	w := Word{1, 1}
	steps := 0
	for len(w) > 1 {
		steps++
		if steps%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		// The last letter would open a strand nothing below it reaches:
		// every larger letter at this position overflows too, so backtrack.
		if w.overflowsStrands() {
			w = w[:len(w)-1]
			w[len(w)-1]++
			continue
		}

		adm := CheckAdmissible(w, target)
		if !adm.OK() {
			e.logger.Debug("pruned",
				"word", w.String(),
				"single_component", adm.SingleComponent,
				"prime", adm.Prime,
				"cyclic_minimal", adm.CyclicMinimal,
				"reduced", adm.ReidemeisterReduced)
			w[len(w)-1]++
			continue
		}

		if w.BettiNumber() < target {
			// Grow with the smallest letter that cannot immediately break
			// cyclic minimality: 1 after a 1, otherwise one below the last.
			if last := w[len(w)-1]; last == 1 {
				w = append(w, 1)
			} else {
				w = append(w, last-1)
			}
			continue
		}

		code, dtErr := w.DTCode()
		if dtErr != nil {
			// An accepted word has one component and contiguous generators,
			// so its trace always closes up.
			return errors.Wrap(errors.ErrCodeInternal, dtErr, "encoding accepted word %q", w)
		}
		count++
		rec := Record{Index: count, Word: w.Clone(), Code: code}
		observability.Enumeration().OnRecord(ctx, e.opts.Genus, rec.Index, len(rec.Word))
		if err := emit(rec); err != nil {
			return err
		}
		w[len(w)-1]++
	}

	e.logger.Debug("search finished", "genus", e.opts.Genus, "records", count, "elapsed", time.Since(start))
	return nil
}

// Enumerate runs a search for the given genus and collects all records.
// It is a convenience wrapper around [Enumerator.Run] for callers that want
// the whole table in memory; the genus-5 table already has several thousand
// entries, so streaming is preferable for anything larger.
func Enumerate(ctx context.Context, genus int) ([]Record, error) {
	var records []Record
	e := NewEnumerator(Options{Genus: genus})
	err := e.Run(ctx, func(r Record) error {
		records = append(records, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
