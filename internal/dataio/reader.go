// SPDX-License-Identifier: MIT

// Package dataio reads point files and renders pipeline results.
//
// Input is comma-separated text, one point per line, optionally gzip (.gz)
// or zstandard (.zst) compressed. Output is either the 4-decimal CSV layout
// of the spkmeans goals or an equivalent YAML document.
package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/spkmeans/matrix"
)

var (
	// ErrEmptyInput is returned when the input holds no points.
	ErrEmptyInput = errors.New("dataio: no points in input")
	// ErrParse is returned for a field that is not a decimal number.
	ErrParse = errors.New("dataio: malformed number")
	// ErrFormat is returned for an unknown output format.
	ErrFormat = errors.New("dataio: unknown output format")
)

// stackedCloser closes its closers innermost first.
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Open opens path for reading, decompressing by extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: open %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("dataio: gzip %s: %w", path, err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("dataio: zstd %s: %w", path, err)
		}
		rc := dec.IOReadCloser()
		return &stackedCloser{Reader: rc, closers: []io.Closer{rc, f}}, nil
	default:
		return f, nil
	}
}

// ReadPoints parses comma-separated rows into an n×m matrix.
// Blank lines are skipped; every row must have the same width.
func ReadPoints(r io.Reader) (*matrix.Dense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var rows [][]float64
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: %w", err)
		}
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				line, col := cr.FieldPos(j)
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrParse, line, col, field)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}

	return m, nil
}

// LoadPoints opens path and reads its points.
func LoadPoints(path string) (*matrix.Dense, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	m, err := ReadPoints(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
