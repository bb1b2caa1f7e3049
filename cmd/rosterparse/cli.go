package main

import (
	"context"
	"io"

	"github.com/fwojciec/rosterparse"
)

// DefaultFile is the page read when no files are given.
const DefaultFile = "rosters.html"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Snapshots rosterparse.SnapshotReader
	Extractor rosterparse.RosterExtractor
}

// ExtractCmd handles the extraction of one or more roster pages.
type ExtractCmd struct {
	Files       []string
	Output      string
	Concurrency int
}
