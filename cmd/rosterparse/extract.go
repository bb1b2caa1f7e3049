package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/rosterparse"
	"github.com/fwojciec/rosterparse/fs"
	"golang.org/x/sync/errgroup"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	roster, err := c.extractAll(deps)
	if err != nil {
		return err
	}

	data, err := EncodeRoster(roster)
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err = deps.Stdout.Write(data)
		return err
	}

	if err := fs.WriteFileAtomic(c.Output, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}
	fmt.Fprintf(deps.Stdout, "Saved %d players to %s\n", len(roster.Players), c.Output)
	return nil
}

// extractAll reads and extracts every file, combining the players in
// argument order. The first failure cancels the remaining files.
func (c *ExtractCmd) extractAll(deps *Dependencies) (*rosterparse.Roster, error) {
	files := c.Files
	if len(files) == 0 {
		files = []string{DefaultFile}
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	rosters := make([]*rosterparse.Roster, len(files))

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			snap, err := deps.Snapshots.ReadSnapshot(gctx, path)
			if err != nil {
				return err
			}
			roster, err := deps.Extractor.ExtractRoster(snap.HTML)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			rosters[i] = roster
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	combined := rosterparse.NewRoster()
	for _, r := range rosters {
		combined.Append(r)
	}
	return combined, nil
}

// EncodeRoster renders a roster as two-space indented JSON followed by a
// newline. Characters such as & and < are written literally.
func EncodeRoster(roster *rosterparse.Roster) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(roster); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
