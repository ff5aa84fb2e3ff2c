package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/confgrid/confmat"
)

// loadMatrix reads a confusion matrix from a CSV file of integer rows
// ("-" reads stdin) and builds the validated Matrix. labels is an optional
// comma-separated class list; empty means generated class_1..class_n.
func loadMatrix(path, labels string) (*confmat.Matrix, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("confgrid: %w", err)
		}
		defer f.Close()
		r = f
	}

	counts, err := parseCounts(r)
	if err != nil {
		return nil, err
	}

	opts := confmat.DefaultOptions()
	if labels != "" {
		opts.Labels = splitTrim(labels)
	}

	return confmat.New(counts, opts)
}

// parseCounts decodes CSV records into integer rows.
func parseCounts(r io.Reader) ([][]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("confgrid: reading matrix: %w", err)
	}

	counts := make([][]int, len(records))
	for i, rec := range records {
		counts[i] = make([]int, len(rec))
		for j, field := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("confgrid: row %d col %d: %q is not an integer", i+1, j+1, field)
			}
			counts[i][j] = v
		}
	}

	return counts, nil
}

// parseTriple decodes an "r,g,b" flag value into a color triple.
// Range validation belongs to heatgrid; this only parses.
func parseTriple(s string) ([3]float64, error) {
	parts := splitTrim(s)
	if len(parts) != 3 {
		return [3]float64{}, fmt.Errorf("confgrid: color %q: want r,g,b", s)
	}

	var t [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("confgrid: color %q: %q is not a number", s, p)
		}
		t[i] = v
	}

	return t, nil
}

// splitTrim splits a comma-separated flag value and trims each item.
func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
