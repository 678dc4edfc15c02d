package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var errNoPatterns = errors.New("no patterns given: use -patterns FILE or -p PATTERN")

// patternFile is the on-disk pattern set format:
//
//	name: promoters
//	allow_empty: false
//	patterns:
//	  - TATAAT
//	  - ttgaca
type patternFile struct {
	Name       string   `yaml:"name"`
	Patterns   []string `yaml:"patterns"`
	AllowEmpty bool     `yaml:"allow_empty"`
}

// parsePatternFile decodes a YAML pattern set.
func parsePatternFile(b []byte) (patternFile, error) {
	var pf patternFile
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return patternFile{}, fmt.Errorf("decode pattern file: %w", err)
	}
	pf.Name = strings.TrimSpace(pf.Name)
	return pf, nil
}

// loadPatternFile reads and decodes path.
func loadPatternFile(path string) (patternFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return patternFile{}, fmt.Errorf("read pattern file: %w", err)
	}
	pf, err := parsePatternFile(b)
	if err != nil {
		return patternFile{}, fmt.Errorf("%s: %w", path, err)
	}
	if pf.Name == "" {
		pf.Name = path
	}
	return pf, nil
}

// resolvePatterns merges the optional pattern file with -p flags.
func resolvePatterns(path string, inline []string) (patternFile, error) {
	pf := patternFile{Name: "inline"}
	if path != "" {
		var err error
		if pf, err = loadPatternFile(path); err != nil {
			return patternFile{}, err
		}
	}
	pf.Patterns = append(pf.Patterns, inline...)
	if len(pf.Patterns) == 0 {
		return patternFile{}, errNoPatterns
	}
	return pf, nil
}

// stringSlice collects repeated -p flags.
type stringSlice []string

func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(value string) error {
	if value == "" {
		return fmt.Errorf("value cannot be empty")
	}
	*s = append(*s, value)
	return nil
}
