// Package catalog persists enumeration runs.
//
// A run is one complete search for a genus together with its records and
// timing metadata. The catalog keeps past runs so that tables can be served
// or compared without recomputing them, and so that the knot tables carry
// the version of the code that produced them.
//
// Two stores implement the same interface: [MemoryStore] for tests and
// single-shot CLI use, and [MongoStore] for deployments.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/braidkit/braidkit/pkg/braid"
	"github.com/braidkit/braidkit/pkg/buildinfo"
)

// Run is one completed enumeration.
type Run struct {
	// ID is a random UUID assigned when the run is created.
	ID string `bson:"_id" json:"id"`

	// Genus is the target genus of the search.
	Genus int `bson:"genus" json:"genus"`

	// Records are the accepted words in search order.
	Records []braid.Record `bson:"records" json:"records"`

	// Count duplicates len(Records) so listings can skip loading them.
	Count int `bson:"count" json:"count"`

	// StartedAt and FinishedAt bound the search.
	StartedAt  time.Time `bson:"started_at" json:"started_at"`
	FinishedAt time.Time `bson:"finished_at" json:"finished_at"`

	// Version is the braidkit version that produced the run.
	Version string `bson:"version" json:"version"`
}

// Summary is the run metadata without the records, for listings.
type Summary struct {
	ID         string    `bson:"_id" json:"id"`
	Genus      int       `bson:"genus" json:"genus"`
	Count      int       `bson:"count" json:"count"`
	FinishedAt time.Time `bson:"finished_at" json:"finished_at"`
	Version    string    `bson:"version" json:"version"`
}

// Summary returns the run's listing metadata.
func (r *Run) Summary() Summary {
	return Summary{
		ID:         r.ID,
		Genus:      r.Genus,
		Count:      r.Count,
		FinishedAt: r.FinishedAt,
		Version:    r.Version,
	}
}

// NewRun assembles a Run with a fresh ID and the current build version.
func NewRun(genus int, records []braid.Record, startedAt, finishedAt time.Time) *Run {
	return &Run{
		ID:         uuid.NewString(),
		Genus:      genus,
		Records:    records,
		Count:      len(records),
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Version:    buildinfo.Version,
	}
}

// Store persists runs.
type Store interface {
	// SaveRun stores a run.
	SaveRun(ctx context.Context, run *Run) error

	// GetRun retrieves a run by ID. Returns an error with code
	// RUN_NOT_FOUND when no such run exists.
	GetRun(ctx context.Context, id string) (*Run, error)

	// LatestRun retrieves the most recently finished run for a genus.
	// Returns an error with code RUN_NOT_FOUND when the genus has none.
	LatestRun(ctx context.Context, genus int) (*Run, error)

	// ListRuns returns summaries of all runs, newest first.
	ListRuns(ctx context.Context) ([]Summary, error)

	// Close releases store resources.
	Close(ctx context.Context) error
}
