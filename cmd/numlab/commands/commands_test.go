package commands

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numlab/internal/labapi"
	"numlab/internal/services/change"
	"numlab/internal/services/integration"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--home", t.TempDir(), "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestChangeCompare(t *testing.T) {
	out, err := run(t, "change", "6", "--denoms", "4,3,1")
	require.NoError(t, err)
	assert.Contains(t, out, "Greedy:  4x1 1x2 (3 coins)")
	assert.Contains(t, out, "Optimal: 3x2 (2 coins)")
	assert.Contains(t, out, "Greedy is not optimal.")
}

func TestChangeDefaultDenominations(t *testing.T) {
	out, err := run(t, "change", "113", "--strategy", "greedy")
	require.NoError(t, err)
	assert.Contains(t, out, "50x2 10x1 2x1 1x1 (5 coins)")
	assert.NotContains(t, out, "Optimal")
}

func TestChangeUnreachable(t *testing.T) {
	out, err := run(t, "change", "7", "--denoms", "5,3", "--strategy", "min")
	require.NoError(t, err)
	assert.Contains(t, out, "Optimal: unreachable")
}

func TestChangeRejectsBadInput(t *testing.T) {
	_, err := run(t, "change", "abc")
	require.Error(t, err)

	_, err = run(t, "change", "5", "--strategy", "fastest")
	require.ErrorContains(t, err, "unknown strategy")

	_, err = run(t, "change", "-5")
	require.Error(t, err)
}

func TestCanonical(t *testing.T) {
	out, err := run(t, "canonical", "--denoms", "4,3,1")
	require.NoError(t, err)
	assert.Contains(t, out, "not canonical")
	assert.Contains(t, out, "6")
}

func TestIntegrateSingleEstimate(t *testing.T) {
	out, err := run(t, "integrate", "--samples", "2000", "--trials", "1", "--seed", "cli")
	require.NoError(t, err)
	assert.Contains(t, out, "Integral of square over [0, 2]")
	assert.Contains(t, out, "Analytical:   2.666667")
	assert.Contains(t, out, "N=2000, seed=cli")
}

func TestIntegrateExperimentIsReproducible(t *testing.T) {
	args := []string{"integrate", "--func", "sin", "--a", "0", "--b", "3.14159", "--samples", "1000", "--trials", "5", "--seed", "again"}
	first, err := run(t, args...)
	require.NoError(t, err)
	second, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "mean of 5 x N=1000")
}

func TestIntegrateUnknownFunction(t *testing.T) {
	_, err := run(t, "integrate", "--func", "gamma", "--trials", "1")
	require.Error(t, err)
}

func TestConvergence(t *testing.T) {
	out, err := run(t, "convergence", "--points", "100,1000", "--trials-list", "1,4", "--samples", "500", "--seed", "sweep")
	require.NoError(t, err)
	assert.Contains(t, out, "samples")
	assert.Contains(t, out, "rel error")
	assert.Contains(t, out, "Seed:         sweep")
}

func TestSavedReportsAreListed(t *testing.T) {
	home := t.TempDir()
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--home", home, "--save", "change", "6", "--denoms", "4,3,1"})
	require.NoError(t, cmd.Execute())

	entries, err := os.ReadDir(filepath.Join(home, "reports"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--home", home, "reports", "list"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "change")
}

func TestReportsListEmpty(t *testing.T) {
	out, err := run(t, "reports", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no reports")
}

func TestUnknownConfigKeysFail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "numlab.toml")
	require.NoError(t, os.WriteFile(path, []byte("[coins]\nshape = \"round\"\n"), 0o600))

	_, err := run(t, "--config", path, "change", "1")
	require.ErrorContains(t, err, "unknown keys")
}

func TestRemoteChange(t *testing.T) {
	h := labapi.New(change.New(), integration.New(), []int{50, 25, 10, 5, 2, 1}, nil, nil, 0)
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	out, err := run(t, "--remote", srv.URL, "change", "6", "--denoms", "4,3,1")
	require.NoError(t, err)
	assert.Contains(t, out, "Optimal: 3x2 (2 coins)")
	assert.Contains(t, out, "Greedy is not optimal.")
}
