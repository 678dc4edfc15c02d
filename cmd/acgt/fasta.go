package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLine bounds a single input line; unwrapped genomes can be long.
const maxLine = 64 << 20

// record is one named input sequence.
type record struct {
	Name string
	Seq  string
}

// readSequences parses FASTA (">name" headers, ";" comments, wrapped
// sequence lines). Input without any header is a single record named
// fallback. Whitespace inside sequence lines is dropped.
func readSequences(r io.Reader, fallback string) ([]record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		out []record
		cur *record
		sb  strings.Builder
	)
	flush := func() {
		if cur != nil {
			cur.Seq = sb.String()
			out = append(out, *cur)
		}
		sb.Reset()
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, ">"):
			flush()
			name := strings.TrimSpace(line[1:])
			if fields := strings.Fields(name); len(fields) > 0 {
				name = fields[0]
			}
			cur = &record{Name: name}
		default:
			if cur == nil {
				cur = &record{Name: fallback}
			}
			for _, f := range strings.Fields(line) {
				sb.WriteString(f)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", fallback, err)
	}
	flush()
	return out, nil
}
