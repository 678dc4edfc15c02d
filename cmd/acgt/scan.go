package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/acgt/automaton"
	"github.com/katalvlaran/acgt/sanitize"
)

// scanResult is the JSON shape of one scanned record.
type scanResult struct {
	Sequence string            `json:"sequence"`
	Length   int               `json:"length"`
	Total    int               `json:"total"`
	Matches  automaton.Matches `json:"matches"`
}

func (e *env) scan(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	patternsPath := fs.String("patterns", "", "YAML pattern file")
	var inline stringSlice
	fs.Var(&inline, "p", "pattern to search for (repeatable)")
	workers := fs.Int("workers", 0, "concurrent searches (0 = one per CPU)")
	asJSON := fs.Bool("json", false, "emit one JSON object per sequence")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := e.build(*patternsPath, inline)
	if err != nil {
		return err
	}
	records, err := e.readInputs(fs.Args())
	if err != nil {
		return err
	}

	texts := make([]string, len(records))
	for i, r := range records {
		texts[i] = r.Seq
	}
	results, err := a.SearchAll(e.ctx, texts, automaton.WithWorkers(*workers))
	if err != nil {
		return err
	}

	for i, r := range records {
		e.log.Debug("scanned", "sequence", r.Name, "length", len(r.Seq), "matches", results[i].Total())
		if *asJSON {
			err = writeJSON(e.stdout, r, results[i])
		} else {
			err = writeText(e.stdout, r, results[i])
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// build resolves the pattern set, logs rejected patterns and constructs
// the automaton.
func (e *env) build(path string, inline []string) (*automaton.Automaton, error) {
	pf, err := resolvePatterns(path, inline)
	if err != nil {
		return nil, err
	}
	for _, rej := range sanitize.Inspect(pf.Patterns).Rejected {
		e.log.Warn("pattern rejected", "set", pf.Name, "index", rej.Index, "pattern", rej.Raw, "err", rej.Err)
	}

	var opts []automaton.Option
	if pf.AllowEmpty {
		opts = append(opts, automaton.WithAllowEmpty())
	}
	a, err := automaton.New(pf.Patterns, opts...)
	if err != nil {
		return nil, fmt.Errorf("pattern set %s: %w", pf.Name, err)
	}
	e.log.Info("automaton built",
		"set", pf.Name,
		"patterns", a.PatternCount(),
		"nodes", a.NodeCount(),
		"capacity", a.Capacity())
	return a, nil
}

// readInputs parses every file, or stdin when none are given.
func (e *env) readInputs(paths []string) ([]record, error) {
	if len(paths) == 0 {
		return readSequences(e.stdin, "stdin")
	}
	var out []record
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		recs, err := readSequences(f, p)
		f.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

// writeText prints one "sequence<TAB>pattern<TAB>offsets" line per found
// pattern, patterns in lexical order.
func writeText(w io.Writer, r record, m automaton.Matches) error {
	for _, p := range m.Patterns() {
		offs := make([]string, len(m[p]))
		for i, o := range m[p] {
			offs[i] = strconv.Itoa(o)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, p, strings.Join(offs, ",")); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, r record, m automaton.Matches) error {
	return json.NewEncoder(w).Encode(scanResult{
		Sequence: r.Name,
		Length:   len(r.Seq),
		Total:    m.Total(),
		Matches:  m,
	})
}
