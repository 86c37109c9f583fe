// SPDX-License-Identifier: MIT
// Package sparse: text-format parser.
//
// Purpose:
//   - Be the single gatekeeper of format correctness: a *Matrix returned by
//     Parse satisfies all invariants, including keys within declared bounds.
//   - Read the whole stream before building anything; any malformed line
//     aborts with a *ParseError and no matrix.
//
// Format:
//
//	rows=<integer>
//	cols=<integer>
//	(<row>, <col>, <value>)
//
// Determinism:
//   - Lines are applied in stream order; a repeated (row, col) is
//     last-write-wins and a zero value is simply not stored.

package sparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	ctxParse     = "Parse"
	ctxParseFile = "ParseFile"

	headerRows = "rows"
	headerCols = "cols"

	// initialScanBuf is the starting bufio.Scanner buffer; it grows up to maxLineBytes.
	initialScanBuf = 4 << 10
)

// Parse reads a matrix in the text format from r.
//
// Implementation:
//   - Stage 1: read every line (eager; read errors → ErrSourceUnavailable).
//   - Stage 2: drop a leading UTF-8 BOM, skip blank lines, expect rows= then cols=.
//   - Stage 3: validate each "(r, c, v)" line and apply it via Set.
//
// Errors:
//   - ErrSourceUnavailable: r is nil or fails to read.
//   - *ParseError wrapping ErrMalformedHeader, ErrMalformedEntry or ErrDimension.
//
// Complexity:
//   - Time O(L + nnz) for L input bytes, Space O(L) during the read.
func Parse(r io.Reader, opts ...Option) (*Matrix, error) {
	if r == nil {
		return nil, sparseErrorf(ctxParse, fmt.Errorf("nil reader: %w", ErrSourceUnavailable))
	}
	o := gatherOptions(opts...)

	lines, err := readLines(r, o.maxLineBytes)
	if errors.Is(err, errLineTooLong) {
		return nil, lineLengthError(lines, o.maxLineBytes)
	}
	if err != nil {
		return nil, err
	}

	return parseLines(lines, o)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...Option) (*Matrix, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseFile opens path and parses it. Open failures wrap both
// ErrSourceUnavailable and the underlying *fs.PathError.
func ParseFile(path string, opts ...Option) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sparseErrorf(ctxParseFile, fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		return nil, sparseErrorf(ctxParseFile, fmt.Errorf("%s: %w", path, err))
	}

	return m, nil
}

// errLineTooLong marks a line longer than maxLineBytes; Parse turns it into a
// header or entry ParseError depending on where the line sits.
var errLineTooLong = errors.New("line too long")

// readLines drains r into memory, one string per line. On errLineTooLong the
// lines read so far are returned, so the failing line is len(lines)+1.
func readLines(r io.Reader, maxLine int) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(initialScanBuf, maxLine)), maxLine)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return lines, errLineTooLong
		}

		return nil, sparseErrorf(ctxParse, fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
	}

	return lines, nil
}

// lineLengthError reports the line after lines as over-long. While rows= or
// cols= is still expected it is a header error, otherwise an entry error.
func lineLengthError(lines []string, maxLine int) error {
	text := fmt.Sprintf("> %d bytes", maxLine)
	nonBlank := 0
	for i, l := range lines {
		if i == 0 {
			l = trimBOM(l)
		}
		if strings.TrimSpace(l) != "" {
			nonBlank++
		}
	}
	if nonBlank < 2 {
		return headerError(len(lines)+1, RuleLineLength, text)
	}

	return entryError(len(lines)+1, RuleLineLength, text)
}

// trimBOM drops a leading UTF-8 byte order mark.
func trimBOM(s string) string { return strings.TrimPrefix(s, "\ufeff") }

// parser stages.
const (
	stageRows = iota
	stageCols
	stageEntries
)

// parseLines turns raw lines into a validated matrix.
func parseLines(lines []string, o Options) (*Matrix, error) {
	var (
		stage      = stageRows
		rows, cols int
		m          *Matrix
		err        error
	)
	for idx, raw := range lines {
		lineNo := idx + 1
		if idx == 0 {
			raw = trimBOM(raw)
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue // blank lines are insignificant everywhere
		}
		switch stage {
		case stageRows:
			if rows, err = parseHeader(lineNo, line, headerRows); err != nil {
				return nil, err
			}
			stage = stageCols
		case stageCols:
			if cols, err = parseHeader(lineNo, line, headerCols); err != nil {
				return nil, err
			}
			m = newMatrix(rows, cols, o)
			stage = stageEntries
		default:
			if err = parseEntry(m, lineNo, line, o); err != nil {
				return nil, err
			}
		}
	}
	if stage != stageEntries {
		return nil, headerError(len(lines)+1, RuleHeaderMissing, "")
	}

	return m, nil
}

// parseHeader accepts "<want>=<non-negative integer>" with optional spaces
// around the '=' and the value.
func parseHeader(lineNo int, line, want string) (int, error) {
	key, val, ok := strings.Cut(line, "=")
	if !ok || strings.TrimSpace(key) != want {
		return 0, headerError(lineNo, RuleHeaderOrder, line)
	}
	n, ok := parseIndex(val)
	if !ok {
		return 0, headerError(lineNo, RuleHeaderValue, line)
	}

	return n, nil
}

// parseEntry validates one "(r, c, v)" line and applies it to m.
func parseEntry(m *Matrix, lineNo int, line string, o Options) error {
	n := len(line)
	if n < 2 || line[0] != '(' || line[n-1] != ')' {
		return entryError(lineNo, RuleParentheses, line)
	}
	inner := line[1 : n-1]
	if strings.ContainsAny(inner, "()") {
		return entryError(lineNo, RuleParentheses, line)
	}

	fields := strings.Split(inner, ",")
	if len(fields) != 3 {
		return entryError(lineNo, RuleFieldCount, line)
	}
	row, okRow := parseIndex(fields[0])
	col, okCol := parseIndex(fields[1])
	val, okVal := parseValue(fields[2])
	if !okRow || !okCol || !okVal {
		return entryError(lineNo, RuleInteger, line)
	}

	if row >= m.rows || col >= m.cols {
		if o.bounds == BoundsIgnore {
			return nil
		}

		return &ParseError{Line: lineNo, Rule: RuleBounds, Text: line, Err: ErrDimension}
	}
	m.Set(row, col, val)

	return nil
}

// parseIndex parses an unsigned decimal that fits in int. Signs are rejected.
func parseIndex(s string) (int, bool) {
	u, err := strconv.ParseUint(strings.TrimSpace(s), 10, strconv.IntSize-1)
	if err != nil {
		return 0, false
	}

	return int(u), true
}

// parseValue parses a decimal int64 with an optional leading '-'.
func parseValue(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+") {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
