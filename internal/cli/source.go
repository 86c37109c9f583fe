// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/spmat/sparse"
)

// StdinPath names standard input as an operand.
const StdinPath = "-"

// codec is the compression implied by a file extension.
type codec int

const (
	codecNone codec = iota
	codecGzip
	codecZstd
)

func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return codecGzip
	case ".zst", ".zstd":
		return codecZstd
	default:
		return codecNone
	}
}

// multiCloser closes a decoder/encoder stack innermost first.
type multiCloser struct {
	io.Reader
	io.Writer
	closers []func() error
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// openSource opens path (or stdin for "-") and transparently decodes .gz and
// .zst files. Failures wrap sparse.ErrSourceUnavailable.
func openSource(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == StdinPath {
		if stdin == nil {
			return nil, fmt.Errorf("stdin: %w", sparse.ErrSourceUnavailable)
		}
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sparse.ErrSourceUnavailable, err)
	}

	switch codecFor(path) {
	case codecGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: gzip %s: %w", sparse.ErrSourceUnavailable, path, err)
		}
		return &multiCloser{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil
	case codecZstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: zstd %s: %w", sparse.ErrSourceUnavailable, path, err)
		}
		return &multiCloser{Reader: dec, closers: []func() error{func() error { dec.Close(); return nil }, f.Close}}, nil
	default:
		return f, nil
	}
}

// createSink creates path for writing, compressing by extension like openSource.
func createSink(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	switch codecFor(path) {
	case codecGzip:
		zw := gzip.NewWriter(f)
		return &multiCloser{Writer: zw, closers: []func() error{zw.Close, f.Close}}, nil
	case codecZstd:
		enc, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zstd %s: %w", path, err)
		}
		return &multiCloser{Writer: enc, closers: []func() error{enc.Close, f.Close}}, nil
	default:
		return f, nil
	}
}

// loadMatrix opens and parses one operand, logging timing at debug level.
func loadMatrix(log *slog.Logger, path string, stdin io.Reader, opts []sparse.Option) (*sparse.Matrix, error) {
	rc, err := openSource(path, stdin)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer rc.Close()

	start := time.Now()
	m, err := sparse.Parse(rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	log.Debug("parsed matrix",
		slog.String("path", path),
		slog.Int("rows", m.Rows()),
		slog.Int("cols", m.Cols()),
		slog.Int("nnz", m.NNZ()),
		slog.Duration("elapsed", time.Since(start)))

	return m, nil
}

// saveMatrix writes the text form of m to path.
func saveMatrix(path string, m *sparse.Matrix) error {
	wc, err := createSink(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := m.WriteTo(wc); err != nil {
		wc.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return wc.Close()
}
