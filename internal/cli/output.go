// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spmat/sparse"
)

// Output formats.
const (
	FormatSummary = "summary"
	FormatText    = "text"
	FormatYAML    = "yaml"
	FormatJSON    = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatSummary, FormatText, FormatYAML, FormatJSON}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// MatrixDoc is the structured (yaml/json) view of a matrix.
type MatrixDoc struct {
	Op      string     `json:"op,omitempty" yaml:"op,omitempty"`
	Rows    int        `json:"rows" yaml:"rows"`
	Cols    int        `json:"cols" yaml:"cols"`
	NNZ     int        `json:"nnz" yaml:"nnz"`
	Density float64    `json:"density" yaml:"density"`
	Entries []EntryDoc `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// EntryDoc is one stored entry.
type EntryDoc struct {
	Row   int   `json:"row" yaml:"row"`
	Col   int   `json:"col" yaml:"col"`
	Value int64 `json:"value" yaml:"value"`
}

// newMatrixDoc builds the structured view; entries are listed in row-major order.
func newMatrixDoc(op string, m *sparse.Matrix, withEntries bool) MatrixDoc {
	doc := MatrixDoc{
		Op:      op,
		Rows:    m.Rows(),
		Cols:    m.Cols(),
		NNZ:     m.NNZ(),
		Density: m.Density(),
	}
	if withEntries {
		for _, e := range m.Entries() {
			doc.Entries = append(doc.Entries, EntryDoc{Row: e.Row, Col: e.Col, Value: e.Value})
		}
	}

	return doc
}

// writeResult prints the result of an arithmetic operation.
func writeResult(w io.Writer, format string, op sparse.Op, m *sparse.Matrix) error {
	switch format {
	case FormatSummary:
		_, err := fmt.Fprintf(w, "Operation completed. Result has %d non-zero entries.\n", m.NNZ())
		return err
	case FormatText:
		_, err := m.WriteTo(w)
		return err
	default:
		return writeDoc(w, format, newMatrixDoc(op.String(), m, true))
	}
}

// writeInfo prints shape and fill statistics without entries.
func writeInfo(w io.Writer, format string, m *sparse.Matrix) error {
	switch format {
	case FormatSummary, FormatText:
		_, err := fmt.Fprintf(w, "rows=%d\ncols=%d\nnnz=%d\ndensity=%.6g\n", m.Rows(), m.Cols(), m.NNZ(), m.Density())
		return err
	default:
		return writeDoc(w, format, newMatrixDoc("", m, false))
	}
}

// writeDoc encodes doc as yaml or json.
func writeDoc(w io.Writer, format string, doc MatrixDoc) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
	}
}
