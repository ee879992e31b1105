// SPDX-License-Identifier: MIT

// Package textio reads and writes integer matrices as plain text.
//
// Input: one row per line, integers separated by any whitespace; lines with
// no numbers are skipped. Output: one line per row, each value right-aligned
// to the widest value in its column, single space between columns.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tapematrix/matrix"
	"github.com/katalvlaran/tapematrix/tape"
)

var (
	// ErrEmptyInput is returned when the text holds no numbers at all.
	ErrEmptyInput = errors.New("textio: no numbers found")

	// ErrBadNumber is returned for a token that is not a base-10 int64.
	ErrBadNumber = errors.New("textio: invalid number")
)

// Parse reads whitespace-separated integer rows from r.
//
// Errors: ErrEmptyInput, ErrBadNumber (with line number), read errors.
func Parse(r io.Reader) ([][]int64, error) {
	var (
		rows [][]int64
		line int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, value %d %q: %w", line, i+1, f, ErrBadNumber)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textio: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	return rows, nil
}

// ReadFile parses the integer rows stored at path.
func ReadFile(path string) ([][]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("file %q can't be read: %w", path, err)
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// ReadDense reads a dense matrix file. Rows must all have the same length.
func ReadDense(path string) (*matrix.Dense, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// ReadStorage reads a compact storage file; short leading rows are padding.
func ReadStorage(path string) (*tape.Storage, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := tape.NewStorage(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// WriteFile writes rows to path in the aligned text shape, padding included
// as numbers so the file reads back losslessly.
func WriteFile(path string, rows [][]int64) error {
	body := Format(rows, nil) + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("file %q can't be written: %w", path, err)
	}

	return nil
}

// Format renders rows with every column right-aligned to its widest value.
// Cells for which blank(i, j) is true print as spaces of the column width;
// column widths still account for their values. A nil blank prints all cells.
// The result has no trailing newline.
func Format(rows [][]int64, blank func(i, j int) bool) string {
	var widths []int
	for _, row := range rows {
		for j, v := range row {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if w := len(strconv.FormatInt(v, 10)); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			cell := strconv.FormatInt(v, 10)
			if blank != nil && blank(i, j) {
				cell = ""
			}
			sb.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
			sb.WriteString(cell)
		}
	}

	return sb.String()
}

// FormatStorage renders compact storage; padding cells are blank when
// blankPadding is set.
func FormatStorage(s *tape.Storage, blankPadding bool) string {
	var blank func(i, j int) bool
	if blankPadding {
		blank = s.IsPadding
	}

	return Format(s.Rows2D(), blank)
}

// FormatBand renders a decoded tape matrix, blanking cells outside band m.
// m <= 0 prints every cell.
func FormatBand(d *matrix.Dense, m int) string {
	var blank func(i, j int) bool
	if m > 0 {
		blank = func(i, j int) bool { return !tape.InBand(i, j, m) }
	}

	return Format(d.Rows2D(), blank)
}

// SideBySide lays two multi-line blocks next to each other. Each block gets
// its prefix on the first line and an equal-width indent on the rest.
func SideBySide(leftPrefix, left, rightPrefix, right string) string {
	ll := strings.Split(left, "\n")
	rl := strings.Split(right, "\n")
	lw := 0
	for _, l := range ll {
		if len(l) > lw {
			lw = len(l)
		}
	}

	n := len(ll)
	if len(rl) > n {
		n = len(rl)
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		lp, rp := strings.Repeat(" ", len(leftPrefix)), strings.Repeat(" ", len(rightPrefix))
		if i == 0 {
			lp, rp = leftPrefix, rightPrefix
		}
		var a, b string
		if i < len(ll) {
			a = ll[i]
		}
		if i < len(rl) {
			b = rl[i]
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(lp + a + strings.Repeat(" ", lw-len(a)) + " " + rp + b)
	}

	return sb.String()
}
