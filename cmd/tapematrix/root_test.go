package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tapematrix/session"
	"github.com/katalvlaran/tapematrix/tape"
)

type harness struct {
	t   *testing.T
	dir string
	log string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()

	return &harness{t: t, dir: dir, log: filepath.Join(dir, "errors.txt")}
}

func (h *harness) file(name, text string) string {
	h.t.Helper()
	p := filepath.Join(h.dir, name)
	require.NoError(h.t, os.WriteFile(p, []byte(text), 0o644))

	return p
}

// run executes args with a private config and error log.
func (h *harness) run(a *app, args ...string) (string, error) {
	h.t.Helper()
	var out bytes.Buffer
	cmd := a.rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{"--config", h.file("cfg.yaml", ""), "--error-log", h.log}
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()

	return out.String(), err
}

func (h *harness) logText() string {
	h.t.Helper()
	raw, err := os.ReadFile(h.log)
	require.NoError(h.t, err)

	return string(raw)
}

const tridiagonal = "4 1 0\n1 4 1\n0 1 4\n"

func TestEncodeStdout(t *testing.T) {
	h := newHarness(t)
	src := h.file("a.txt", tridiagonal)

	out, err := h.run(newApp(), "encode", src)
	require.NoError(t, err)
	require.Equal(t, "0 4\n1 4\n1 4\n", out)
}

func TestEncodeWithBandwidthToFile(t *testing.T) {
	h := newHarness(t)
	src := h.file("a.txt", tridiagonal)
	dst := filepath.Join(h.dir, "s.txt")

	_, err := h.run(newApp(), "encode", src, "-m", "1", "-o", dst)
	require.NoError(t, err)
	raw, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "4\n4\n4\n", string(raw))
}

func TestEncodeStrictRefusesTruncation(t *testing.T) {
	h := newHarness(t)
	src := h.file("a.txt", tridiagonal)

	_, err := h.run(newApp(), "encode", src, "-m", "1", "--strict")
	require.ErrorIs(t, err, tape.ErrBandTruncated)
	require.Contains(t, h.logText(), "band")
}

func TestDecode(t *testing.T) {
	h := newHarness(t)
	src := h.file("s.txt", "0 4\n1 4\n1 4\n")

	out, err := h.run(newApp(), "decode", src)
	require.NoError(t, err)
	require.Equal(t, tridiagonal, out)
}

func TestBandwidth(t *testing.T) {
	h := newHarness(t)
	// the row scan stops at the first non-zero and misses the 5
	src := h.file("a.txt", "1 0 0\n0 1 5\n0 5 1\n")

	out, err := h.run(newApp(), "bandwidth", src)
	require.NoError(t, err)
	require.Equal(t, "1\n", out)

	out, err = h.run(newApp(), "bandwidth", "--full", src)
	require.NoError(t, err)
	require.Equal(t, "2\n", out)
}

func TestMultiply(t *testing.T) {
	h := newHarness(t)
	a := h.file("a.txt", "1\n2\n")
	b := h.file("b.txt", "3\n4\n")

	out, err := h.run(newApp(), "multiply", a, b)
	require.NoError(t, err)
	require.Equal(t, "3\n8\n", out)
}

func TestMultiplyMismatch(t *testing.T) {
	h := newHarness(t)
	a := h.file("a.txt", "1\n2\n")
	b := h.file("b.txt", "1\n2\n3\n")

	_, err := h.run(newApp(), "multiply", a, b)
	require.Error(t, err)
	require.Contains(t, h.logText(), "first matrix size: 2x2, second matrix size: 3x3")
}

func TestMissingFileIsLogged(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(newApp(), "encode", filepath.Join(h.dir, "nope.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, h.logText(), "nope.txt")
}

func TestMenuNeedsTerminal(t *testing.T) {
	h := newHarness(t)
	a := newApp()
	a.isTerminal = func() bool { return false }

	_, err := h.run(a)
	require.ErrorIs(t, err, errNotTerminal)
	require.Contains(t, h.logText(), errNotTerminal.Error())
}

func TestPositionalErrorLog(t *testing.T) {
	h := newHarness(t)
	a := newApp()
	a.isTerminal = func() bool { return false }
	pos := filepath.Join(h.dir, "menu-errors.txt")

	cmd := a.rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", h.file("cfg.yaml", ""), pos})
	require.Error(t, cmd.Execute())

	raw, err := os.ReadFile(pos)
	require.NoError(t, err)
	require.Contains(t, string(raw), errNotTerminal.Error())
}

func TestBadConfig(t *testing.T) {
	h := newHarness(t)
	cfg := h.file("bad.yaml", "no_such_key: 1\n")

	cmd := newApp().rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "bandwidth", h.file("a.txt", tridiagonal)})
	require.Error(t, cmd.Execute())
}

func TestDebugInstallsLogger(t *testing.T) {
	t.Cleanup(func() { session.SetLogger(nil) })
	h := newHarness(t)
	src := h.file("a.txt", tridiagonal)

	_, err := h.run(newApp(), "--debug", "bandwidth", src)
	require.NoError(t, err)
	require.NotNil(t, session.Logger().Core())
	require.True(t, session.Logger().Core().Enabled(-1))
}
