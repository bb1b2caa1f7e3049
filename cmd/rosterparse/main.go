package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rosterparse"
	"github.com/fwojciec/rosterparse/fs"
	"github.com/fwojciec/rosterparse/goquery"
	rpslog "github.com/fwojciec/rosterparse/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rosterparse"),
		kong.Description("Extract fantasy baseball rosters from saved league roster pages as JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	for _, arg := range args {
		if arg == "--help" || arg == "-h" || (len(args) == 1 && arg == "help") {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	corrections := rosterparse.DefaultCorrections()
	for _, s := range cli.Fix {
		c, err := rosterparse.ParseCorrection(s)
		if err != nil {
			return err
		}
		corrections.Add(c.From, c.To)
	}

	// Wire dependencies
	logger := newLogger(stderr, cli.Verbose)
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Snapshots: rpslog.NewLoggingSnapshotReader(fs.NewSnapshotReader(), logger),
		Extractor: rpslog.NewLoggingExtractor(goquery.NewExtractor(goquery.WithCorrections(corrections)), logger),
	}

	cmd := &ExtractCmd{
		Files:       cli.Files,
		Output:      cli.Output,
		Concurrency: cli.Concurrency,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Files       []string `arg:"" optional:"" help:"Saved league roster pages (default: rosters.html)"`
	Output      string   `short:"o" help:"Write JSON to this file instead of stdout"`
	Fix         []string `short:"f" sep:"none" placeholder:"FROM=TO" help:"Add a player name correction (repeatable)"`
	Concurrency int      `short:"c" default:"4" help:"Number of pages processed in parallel"`
	Verbose     bool     `short:"v" help:"Log progress to stderr"`
}

// newLogger returns a text logger on w. Only warnings are shown unless
// verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
