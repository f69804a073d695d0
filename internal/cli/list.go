package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/braidkit/braidkit/pkg/braid"
	"github.com/braidkit/braidkit/pkg/cache"
	"github.com/braidkit/braidkit/pkg/errors"
)

// cacheTTL is how long enumeration results stay valid in the file cache.
// Results are deterministic, so the TTL exists only to bound disk usage.
const cacheTTL = 30 * 24 * time.Hour

// newListCmd creates the list command, which enumerates the braid words
// covering all prime positive-braid knots of a fixed genus.
func newListCmd() *cobra.Command {
	var (
		genus       int
		output      string
		noCache     bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Enumerate positive braid words by genus",
		Long: `Enumerate the positive braid words whose closures cover all prime
positive-braid knots of the given genus. Each output line has the form

    <word>: <crossings> <index> <dt code>

where <word> uses letters a, b, c, ... for the braid generators.`,
		Example: `  braidkit list -g 3
  braidkit list -g 4 -o genus4.txt
  braidkit list -g 3 --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateGenus(genus); err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			records, cached, err := loadRecords(ctx, genus, noCache)
			if err != nil {
				return err
			}

			if interactive {
				if output != "" {
					printWarning("--output is ignored in interactive mode")
				}
				model := newRecordListModel(genus, records)
				_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			out, err := openOutput(output)
			if err != nil {
				return fmt.Errorf("open output: %w", err)
			}
			defer out.Close()

			for _, r := range records {
				fmt.Fprintln(out, r.String())
			}

			if output != "" {
				printSuccess("Wrote genus-%d enumeration", genus)
				printFile(output)
				crossings := 0
				if len(records) > 0 {
					crossings = len(records[0].Word)
				}
				printStats(len(records), crossings, cached)
			} else {
				logger.Debug("enumeration complete", "genus", genus, "records", len(records), "cached", cached)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&genus, "genus", "g", 0, "genus of the knots to enumerate (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the result cache")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse results in an interactive table")
	_ = cmd.MarkFlagRequired("genus")

	return cmd
}

// loadRecords returns the enumeration for genus, consulting the file cache
// first. The bool reports whether the result came from the cache.
func loadRecords(ctx context.Context, genus int, noCache bool) ([]braid.Record, bool, error) {
	logger := loggerFromContext(ctx)

	c, err := newCache(noCache)
	if err != nil {
		return nil, false, fmt.Errorf("open cache: %w", err)
	}
	defer c.Close()

	key := cache.NewDefaultKeyer().EnumerationKey(genus)

	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		var records []braid.Record
		if err := json.Unmarshal(data, &records); err == nil {
			logger.Debug("cache hit", "genus", genus, "records", len(records))
			return records, true, nil
		}
		// Corrupt entry: fall through and recompute.
		logger.Debug("discarding unreadable cache entry", "key", key)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Enumerating genus-%d braid words...", genus))
	spinner.Start()

	p := newProgress(logger)
	records, err := braid.Enumerate(ctx, genus)
	spinner.Stop()
	if err != nil {
		return nil, false, err
	}
	p.done(fmt.Sprintf("Found %d braid words for genus %d", len(records), genus))

	if data, err := json.Marshal(records); err == nil {
		if err := c.Set(ctx, key, data, cacheTTL); err != nil {
			logger.Debug("cache write failed", "err", err)
		}
	}

	return records, false, nil
}
