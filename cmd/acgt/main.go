// Command acgt scans nucleotide sequences for a set of motifs with an
// Aho–Corasick automaton, renders the automaton, or runs a random demo.
//
// Usage:
//
//	acgt [-log-level LEVEL] scan   [-patterns FILE] [-p PATTERN]... [-workers N] [-json] [FILE]...
//	acgt [-log-level LEVEL] render [-patterns FILE] [-p PATTERN]... [-format tree|dot]
//	acgt [-log-level LEVEL] random [-count N] [-length N] [-body N] [-seed N] [-render]
//
// scan reads FASTA or plain sequence files (stdin when none are given).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
)

var errUsage = errors.New("usage: acgt [-log-level LEVEL] scan|render|random [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run parses global flags, sets up logging and dispatches the subcommand.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("acgt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	level := fs.String("log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := newLogger(stderr, *level)
	if err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}
	env := &env{ctx: ctx, stdin: stdin, stdout: stdout, stderr: stderr, log: log}

	switch rest[0] {
	case "scan":
		return env.scan(rest[1:])
	case "render":
		return env.render(rest[1:])
	case "random":
		return env.random(rest[1:])
	default:
		return fmt.Errorf("unknown command %q: %w", rest[0], errUsage)
	}
}

// env carries the process I/O and logger into subcommands.
type env struct {
	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
}

// newLogger builds a text slog logger on w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
