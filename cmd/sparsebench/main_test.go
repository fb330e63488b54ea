// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/sparsebench/config"
	"github.com/katalvlaran/sparsebench/harness"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun_PositionalSizes(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "run", "100", "500", "2000", "--index", "hash,tree", "--seed", "3")
	require.NoError(t, err)
	require.Contains(t, out, "sparsebench dev\n")
	require.Contains(t, out, "- reserve space for a sparse matrix 100 x 100\n")
	require.Contains(t, out, "- Nb values stored in matrix = 500\n")
	require.Contains(t, out, "   (sparsity ratio=5%)\n")
	require.Contains(t, out, "- Nb searches in matrix = 2,000\n")
	require.Contains(t, out, " - using tree index\n")
	require.NotContains(t, out, "bitmap")
}

func TestRun_ExponentMode(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "run", "--exp", "2", "2", "3", "--index", "sorted")
	require.NoError(t, err)
	require.Contains(t, out, "- reserve space for a sparse matrix 100 x 100\n")
	require.Contains(t, out, "- Nb searches in matrix = 1,000\n")
	require.Contains(t, out, " - sorted index: nbvalues=")
}

func TestRun_RejectsBadArguments(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "run", "ten")
	require.ErrorIs(t, err, ErrUsage)

	_, _, err = execute(t, "run", "-5")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--exp", "30")
	require.ErrorIs(t, err, config.ErrExponent)

	_, _, err = execute(t, "run", "0")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "run", "10", "10", "10", "--index", "heap")
	require.Error(t, err)

	_, _, err = execute(t, "run", "1", "2", "3", "4")
	require.Error(t, err)
}

func TestSweep_WritesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sweep.csv")
	out, _, err := execute(t, "sweep", "5", "--out", path, "--kind", "bitmap",
		"--min-dim-exp", "1", "--max-dim-exp", "2", "--min-search-exp", "1", "--max-search-exp", "2")
	require.NoError(t, err)
	require.Contains(t, out, "- sweep: 4 rows written to "+path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")

	var rows []string
	for _, l := range lines {
		if !strings.HasPrefix(l, "#") {
			rows = append(rows, l)
		}
	}
	require.Len(t, rows, 4)
	require.Contains(t, string(raw), "# sparsity=5%\n")
	require.Contains(t, string(raw), "# index=bitmap\n")
	require.Contains(t, string(raw), "# "+strings.Join(harness.SweepColumns, ";")+"\n")
	require.True(t, strings.HasPrefix(rows[0], "0;10;5;"), rows[0])
	require.True(t, strings.HasPrefix(rows[3], "1;100;500;"), rows[3])
}

func TestSweep_Stdout(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "sweep", "--out", "-",
		"--min-dim-exp", "1", "--max-dim-exp", "1", "--min-search-exp", "1", "--max-search-exp", "1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "# sparsebench dev sweep\n"), out)
	require.NotContains(t, out, "rows written")
}

func TestSweep_FailsFastOnOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "no", "such", "dir", "sweep.csv")
	out, _, err := execute(t, "sweep", "--out", path)
	require.ErrorIs(t, err, harness.ErrOutput)
	require.Empty(t, out)
}

func TestSweep_RejectsExtremeExponents(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{
		"--max-search-exp=9223372036854775807",
		"--min-dim-exp=-9223372036854775808",
	} {
		out, _, err := execute(t, "sweep", "--out", "-", flag)
		require.ErrorIs(t, err, config.ErrExponent, flag)
		require.Empty(t, out)
	}
}

func TestSweep_RejectsBadSparsity(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"0", "150", "lots"} {
		_, _, err := execute(t, "sweep", arg, "--out", "-")
		require.ErrorIs(t, err, ErrUsage, arg)
	}
}

func TestDemo_Output(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "demo", "100")
	require.NoError(t, err)

	for _, want := range []string{
		"- reserve space for a sparse matrix 100 x 100\n",
		"Matrix content:\nrow=3 col=4: a=5 b=1.2 vect size=5\n",
		"Matrix content:\nrow=3 col=4: a=6 b=2.3 vect size=9\n",
		"row=0 col=0: a=0 b=0 vect size=0\n",
		"row=9 col=90: a=18 b=27 vect size=0\n",
		"Get elem at (3,2): empty=true\n",
		"value = 0 (zero=true)\n",
		"copy: value at (3,30) = 6\n",
	} {
		require.Contains(t, out, want)
	}
	require.Equal(t, 3, strings.Count(out, "Matrix content:"))
	// the bulk load replaced the earlier single cell
	last := out[strings.LastIndex(out, "Matrix content:"):]
	require.NotContains(t, last, "col=4:")
}

func TestDemo_GridTooSmall(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "demo", "50")
	require.Error(t, err)
}

func TestConfig_FlagsOverrideFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 11\nlog_level: warn\nrun:\n  dim: 250\n"), 0o600))

	out, _, err := execute(t, "config", "--config", path, "--seed", "12")
	require.NoError(t, err)
	require.Contains(t, out, "seed: 12\n")
	require.Contains(t, out, "log_level: warn\n")
	require.Contains(t, out, "  dim: 250\n")
}

func TestRoot_BadLogLevel(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "config", "--log-level", "chatty")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestRun_DebugLogsGoToStderr(t *testing.T) {
	t.Parallel()

	out, errOut, err := execute(t, "run", "20", "20", "20", "--index", "hash", "--log-level", "debug", "--log-json")
	require.NoError(t, err)
	require.Contains(t, errOut, `"msg":"phase completed"`)
	require.NotContains(t, out, "phase completed")
}
