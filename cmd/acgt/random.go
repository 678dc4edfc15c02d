package main

import (
	"flag"
	"time"

	"github.com/katalvlaran/acgt/automaton"
	"github.com/katalvlaran/acgt/generator"
)

// random reproduces the classic demo: random genomes, a random body, one
// scan, and optionally the rendered trie.
func (e *env) random(args []string) error {
	fs := flag.NewFlagSet("random", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	count := fs.Int("count", generator.DefaultPatternCount, "number of random patterns")
	length := fs.Int("length", generator.DefaultPatternLength, "length of each pattern")
	body := fs.Int("body", generator.DefaultSequenceLength, "length of the random body")
	seed := fs.Int64("seed", 0, "RNG seed (derived from the clock when unset)")
	render := fs.Bool("render", false, "also print the trie")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seeded := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seeded = true
		}
	})
	if !seeded {
		*seed = time.Now().UnixNano()
	}
	e.log.Info("random run", "seed", *seed, "count", *count, "length", *length, "body", *body)

	gen := generator.WithSeed(*seed)
	words, err := generator.Patterns(*count, *length, gen)
	if err != nil {
		return err
	}
	text, err := generator.Sequence(*body, generator.WithSeed(*seed+1))
	if err != nil {
		return err
	}

	a, err := automaton.New(words)
	if err != nil {
		return err
	}
	if err := writeText(e.stdout, record{Name: "random", Seq: text}, a.Search(text)); err != nil {
		return err
	}
	if *render {
		return writeGraph(e.stdout, a, "tree")
	}
	return nil
}
