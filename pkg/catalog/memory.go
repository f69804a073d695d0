package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/braidkit/braidkit/pkg/errors"
)

// MemoryStore keeps runs in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]*Run)}
}

// SaveRun stores a run, replacing any run with the same ID.
func (s *MemoryStore) SaveRun(ctx context.Context, run *Run) error {
	if run.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "run has no ID")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

// GetRun retrieves a run by ID.
func (s *MemoryStore) GetRun(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeRunNotFound, "run %s not found", id)
	}
	return run, nil
}

// LatestRun retrieves the most recently finished run for a genus.
func (s *MemoryStore) LatestRun(ctx context.Context, genus int) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *Run
	for _, run := range s.runs {
		if run.Genus != genus {
			continue
		}
		if latest == nil || run.FinishedAt.After(latest.FinishedAt) {
			latest = run
		}
	}
	if latest == nil {
		return nil, errors.New(errors.ErrCodeRunNotFound, "no run for genus %d", genus)
	}
	return latest, nil
}

// ListRuns returns summaries of all runs, newest first.
func (s *MemoryStore) ListRuns(ctx context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summaries := make([]Summary, 0, len(s.runs))
	for _, run := range s.runs {
		summaries = append(summaries, run.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].FinishedAt.After(summaries[j].FinishedAt)
	})
	return summaries, nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
