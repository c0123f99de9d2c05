// SPDX-License-Identifier: MIT

package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spkmeans/matrix"
)

// Output formats accepted by Write.
const (
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// Report is the printable outcome of one goal.
// Seeds and Eigenvalues are optional header lines; Rows is the body.
type Report struct {
	Goal        string
	Seeds       []int
	Eigenvalues []float64
	Rows        [][]float64
}

// FormatValue prints v with four decimals, never as "-0.0000".
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	if s == "-0.0000" {
		return "0.0000"
	}

	return s
}

// MatrixRows copies m into row slices.
func MatrixRows(m matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}
	if d, ok := m.(*matrix.Dense); ok {
		return d.RowSlices(), nil
	}

	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("dataio: %w", err)
			}
			rows[i][j] = v
		}
	}

	return rows, nil
}

// Write renders r in format (FormatCSV or FormatYAML).
func Write(w io.Writer, format string, r *Report) error {
	switch format {
	case FormatCSV, "":
		return WriteCSV(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// WriteCSV prints the seed line, the eigenvalue line and then every row.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if len(r.Seeds) > 0 {
		rec := make([]string, len(r.Seeds))
		for i, s := range r.Seeds {
			rec[i] = strconv.Itoa(s)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("dataio: %w", err)
		}
	}
	if len(r.Eigenvalues) > 0 {
		if err := cw.Write(formatRow(r.Eigenvalues)); err != nil {
			return fmt.Errorf("dataio: %w", err)
		}
	}
	for _, row := range r.Rows {
		if err := cw.Write(formatRow(row)); err != nil {
			return fmt.Errorf("dataio: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("dataio: %w", err)
	}

	return nil
}

func formatRow(row []float64) []string {
	rec := make([]string, len(row))
	for i, v := range row {
		rec[i] = FormatValue(v)
	}

	return rec
}

// WriteYAML emits r as a YAML mapping. Floats keep the 4-decimal text of
// the CSV layout and sequences use flow style.
func WriteYAML(w io.Writer, r *Report) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, value)
	}

	if r.Goal != "" {
		add("goal", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Goal})
	}
	if len(r.Seeds) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, s := range r.Seeds {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(s)})
		}
		add("seeds", seq)
	}
	if len(r.Eigenvalues) > 0 {
		add("eigenvalues", floatSeq(r.Eigenvalues))
	}
	rows := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range r.Rows {
		rows.Content = append(rows.Content, floatSeq(row))
	}
	add("rows", rows)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("dataio: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("dataio: %w", err)
	}

	return nil
}

func floatSeq(vs []float64) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range vs {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: FormatValue(v)})
	}

	return seq
}
