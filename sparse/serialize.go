// SPDX-License-Identifier: MIT
// Package sparse: text-format serializer.
// Output is the exact format Parse accepts, with entries in row-major order,
// so Parse(Format(m)) reproduces m and equal matrices print identically.

package sparse

import (
	"encoding"
	"io"
	"strconv"
)

const (
	opWriteTo       = "WriteTo"
	opMarshalText   = "MarshalText"
	opUnmarshalText = "UnmarshalText"
)

// ---------- Formatting literals ----------
const (
	_fmtRows     = "rows="
	_fmtCols     = "cols="
	_fmtOpen     = "("
	_fmtSep      = ", "
	_fmtClose    = ")"
	_fmtLineFeed = "\n"
)

var (
	_ encoding.TextMarshaler   = (*Matrix)(nil)
	_ encoding.TextUnmarshaler = (*Matrix)(nil)
	_ io.WriterTo              = (*Matrix)(nil)
)

// Format renders m in the text format. A nil matrix renders as "".
// Complexity: O(nnz log nnz).
func Format(m *Matrix) string {
	if m == nil {
		return ""
	}

	return string(m.appendText(nil))
}

// String implements fmt.Stringer via Format.
func (m *Matrix) String() string { return Format(m) }

// WriteTo writes the text form of m to w. A nil m fails with ErrNilMatrix.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	if m == nil {
		return 0, sparseErrorf(opWriteTo, ErrNilMatrix)
	}
	n, err := w.Write(m.appendText(nil))

	return int64(n), err
}

// MarshalText implements encoding.TextMarshaler. A nil m fails with ErrNilMatrix.
func (m *Matrix) MarshalText() ([]byte, error) {
	if m == nil {
		return nil, sparseErrorf(opMarshalText, ErrNilMatrix)
	}

	return m.appendText(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with default options.
// On error m is left unchanged.
func (m *Matrix) UnmarshalText(text []byte) error {
	if m == nil {
		return sparseErrorf(opUnmarshalText, ErrNilMatrix)
	}
	parsed, err := ParseString(string(text))
	if err != nil {
		return err
	}
	*m = *parsed

	return nil
}

// appendText appends the header and one line per entry to b.
func (m *Matrix) appendText(b []byte) []byte {
	b = append(b, _fmtRows...)
	b = strconv.AppendInt(b, int64(m.rows), 10)
	b = append(b, _fmtLineFeed...)
	b = append(b, _fmtCols...)
	b = strconv.AppendInt(b, int64(m.cols), 10)
	b = append(b, _fmtLineFeed...)
	for _, e := range m.Entries() {
		b = append(b, _fmtOpen...)
		b = strconv.AppendInt(b, int64(e.Row), 10)
		b = append(b, _fmtSep...)
		b = strconv.AppendInt(b, int64(e.Col), 10)
		b = append(b, _fmtSep...)
		b = strconv.AppendInt(b, e.Value, 10)
		b = append(b, _fmtClose...)
		b = append(b, _fmtLineFeed...)
	}

	return b
}
