package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frozolotl/typst-ansi-hl/internal/iotest"
)

func TestMainCmd_help(t *testing.T) {
	t.Parallel()

	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"-h"})
	assert.Zero(t, exitCode)
}

func TestMainCmd_version(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: iotest.Writer(t),
	}).Run([]string{"-version"})
	assert.Zero(t, exitCode)
	assert.Contains(t, stdout.String(), _version)
}

func TestMainCmd_badArguments(t *testing.T) {
	t.Parallel()

	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"--not-a-flag"})
	assert.NotZero(t, exitCode)
}

func TestMainCmd_stdin(t *testing.T) {
	t.Parallel()

	src := "= Hello\nThis is *Typst*.\n"
	var stdout bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(src),
		Stdout: &stdout,
		Stderr: iotest.Writer(t),
	}).Run(nil)
	require.Zero(t, exitCode)

	assert.Equal(t, src, ansi.Strip(stdout.String()),
		"output must carry the input verbatim under the escapes")
	assert.Contains(t, stdout.String(), "\x1b[0;", "heading should be styled")
}

func TestMainCmd_file(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "in.typ")
	require.NoError(t, os.WriteFile(path, []byte("#let x = 1\n"), 0o644))

	var stdout bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: iotest.Writer(t),
	}).Run([]string{path})
	require.Zero(t, exitCode)
	assert.Equal(t, "#let x = 1\n", ansi.Strip(stdout.String()))
}

func TestMainCmd_fileMissing(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{filepath.Join(t.TempDir(), "does-not-exist.typ")})
	assert.NotZero(t, exitCode)
	assert.Contains(t, stderr.String(), "read")
}

func TestMainCmd_discordSoftLimit(t *testing.T) {
	t.Parallel()

	src := "= Hello\nThis is *Typst*.\n"
	var stdout bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(src),
		Stdout: &stdout,
		Stderr: iotest.Writer(t),
	}).Run([]string{"-d", "-soft-limit", "10"})
	require.Zero(t, exitCode)

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "```ansi\n"))
	assert.True(t, strings.HasSuffix(out, "```\n"))
	assert.Equal(t, out, ansi.Strip(out),
		"a tiny limit forces unstyled output")
}
