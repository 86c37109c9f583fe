// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

const (
	matrixA = "rows=2\ncols=2\n(0,0,1)\n(0,1,2)\n(1,0,3)\n(1,1,4)\n"
	matrixB = "rows=2\ncols=2\n(0,0,5)\n(1,1,6)\n"
	matrixC = "rows=2\ncols=3\n\n(1,0,-1)\n(0,2,7)\n(0, 2, 7)\n"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
}

// isolateConfig keeps the developer's own spmat config and SPMAT_* vars out of tests.
func isolateConfig(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, EnvPrefix+"_") {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeGzip(t *testing.T, dir, name, content string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return writeFile(t, dir, name, buf.String())
}

func writeZstd(t *testing.T, dir, name, content string) string {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return writeFile(t, dir, name, string(enc.EncodeAll([]byte(content), nil)))
}

type cliResult struct {
	code   int
	stdout string
	stderr string
}

// runCLI executes the command tree in-process.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return cliResult{code: code, stdout: out.String(), stderr: errOut.String()}
}

// fixtures writes matrixA, matrixB and matrixC into a temp dir.
func fixtures(t *testing.T) (dir, a, b, c string) {
	t.Helper()
	dir = t.TempDir()
	return dir,
		writeFile(t, dir, "a.txt", matrixA),
		writeFile(t, dir, "b.txt", matrixB),
		writeFile(t, dir, "c.txt", matrixC)
}
