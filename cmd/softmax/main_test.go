package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "--backend", "loop", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "0.090031 0.244728 0.665241", strings.TrimSpace(out))
}

func TestRun_Gradient(t *testing.T) {
	out, err := execute(t, "run", "--backend", "blas", "--grad", "1,0,0", "1", "2", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "0.081925 -0.022033 -0.059892"), lines[1])
}

func TestRun_ShapeAndAxis(t *testing.T) {
	out, err := execute(t, "run", "--shape", "2,2", "--axis", "0", "0", "5", "0", "5")
	require.NoError(t, err)
	assert.Equal(t, "0.500000 0.500000 0.500000 0.500000", strings.TrimSpace(out))
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "abc")
	assert.Error(t, err)
	_, err = execute(t, "run", "--shape", "2,2", "1", "2", "3")
	assert.Error(t, err)
	_, err = execute(t, "run", "--backend", "mkl", "1")
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	out, err := execute(t, "bench", "--outer", "4", "--channels", "8", "--inner", "3", "--block", "4", "-n", "2", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "path=generic")
	assert.Contains(t, out, "forward")
	assert.Contains(t, out, "backward")
	// 4 outer * 2 blocks * 3 inner * 4 lanes of float32.
	assert.Contains(t, out, "bytes=384")

	out, err = execute(t, "bench", "--channels", "16", "--iterations", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "path=dense")
}
