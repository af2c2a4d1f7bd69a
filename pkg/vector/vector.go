// Package vector reads and writes test-vector grids: rows of single
// digits '0'-'5' (one per node state, in lattice order), separated by
// newlines, with columns separated by whitespace or simple adjacency.
// Every row must be the same width. Rows are time steps; columns are
// input positions, or input-then-output positions in a golden-reference
// file, which Split divides back into its two halves.
package vector

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/vsyn/FETX/pkg/fetx"
	"github.com/vsyn/FETX/pkg/fetxerr"
)

// Vector is a rectangular grid of node states over time.
type Vector struct {
	Width int
	Rows  [][]fetx.State
}

const maxDigit = byte('0') + byte(fetx.Undriven)

// Parse reads a vector from r. A ragged grid or a character outside
// '0'-'5'/whitespace is kind FFormat; a read failure is kind IO.
func Parse(r io.Reader) (Vector, error) {
	br := bufio.NewReader(r)
	var v Vector
	var row []fetx.State

	endRow := func() error {
		if len(row) == 0 {
			return nil
		}
		if v.Width == 0 {
			v.Width = len(row)
		} else if len(row) != v.Width {
			return fmt.Errorf("vector: row %d has %d columns, previous rows have %d",
				len(v.Rows), len(row), v.Width)
		}
		v.Rows = append(v.Rows, row)
		row = nil
		return nil
	}

	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Vector{}, fetxerr.New(fetxerr.IO, err)
		}

		switch {
		case c >= '0' && c <= maxDigit:
			row = append(row, fetx.State(c-'0'))
		case c == '\n':
			if err := endRow(); err != nil {
				return Vector{}, fetxerr.New(fetxerr.FFormat, err)
			}
		case c == ' ' || c == '\t' || c == '\r':
		default:
			return Vector{}, fetxerr.New(fetxerr.FFormat,
				fmt.Errorf("vector: unexpected character %q", c))
		}
	}
	if err := endRow(); err != nil {
		return Vector{}, fetxerr.New(fetxerr.FFormat, err)
	}

	return v, nil
}

// Read parses the vector file at path.
func Read(path string) (Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return Vector{}, fetxerr.New(fetxerr.FOpen, err)
	}

	v, perr := Parse(f)
	if cerr := f.Close(); cerr != nil {
		return v, fetxerr.New(fetxerr.KindOf(perr)|fetxerr.FClose, cerr)
	}
	return v, perr
}

// Split divides v at column `at` into a left vector of the first `at`
// columns and a right vector of the rest. The halves share v's backing
// rows.
func (v Vector) Split(at int) (Vector, Vector, error) {
	if at < 0 || at > v.Width {
		return Vector{}, Vector{}, fetxerr.New(fetxerr.Param,
			fmt.Errorf("vector: split at column %d of %d", at, v.Width))
	}
	left := Vector{Width: at, Rows: make([][]fetx.State, len(v.Rows))}
	right := Vector{Width: v.Width - at, Rows: make([][]fetx.State, len(v.Rows))}
	for t, row := range v.Rows {
		left.Rows[t] = row[:at]
		right.Rows[t] = row[at:]
	}
	return left, right, nil
}

// Write serializes v as adjacent digits, one row per line.
func Write(w io.Writer, v Vector) error {
	bw := bufio.NewWriter(w)
	for _, row := range v.Rows {
		for _, st := range row {
			if err := bw.WriteByte(byte('0') + byte(st)); err != nil {
				return fetxerr.New(fetxerr.IO, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fetxerr.New(fetxerr.IO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fetxerr.New(fetxerr.IO, err)
	}
	return nil
}

// WriteFile serializes v to the file at path.
func WriteFile(path string, v Vector) error {
	f, err := os.Create(path)
	if err != nil {
		return fetxerr.New(fetxerr.FOpen, err)
	}

	werr := Write(f, v)
	if cerr := f.Close(); cerr != nil {
		return fetxerr.New(fetxerr.KindOf(werr)|fetxerr.FClose, cerr)
	}
	return werr
}
