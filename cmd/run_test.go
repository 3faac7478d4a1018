/*
File    : ziget/cmd/run_test.go
Package : cmd
*/
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Zeph16/ziget/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EmptyInputFileIsError(t *testing.T) {
	var buf bytes.Buffer
	code := Run(&Options{}, diag.New(&buf))
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "no input file")
}

func TestRun_MissingInputFileReportsButExitsZero(t *testing.T) {
	var buf bytes.Buffer
	opts := &Options{InputFile: filepath.Join(t.TempDir(), "does-not-exist.zg"), Output: "a.out"}
	code := Run(opts, diag.New(&buf))
	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "does not exist")
}

func TestRun_MissingClangPathIsFatal(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "hello.zg")
	require.NoError(t, os.WriteFile(input, []byte(`procedure main { print("hi") }`), 0o644))

	t.Setenv("ZIGET_CLANG_PATH", "")

	var buf bytes.Buffer
	opts := &Options{InputFile: input, Output: filepath.Join(dir, "a.out")}
	code := Run(opts, diag.New(&buf))
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "ZIGET_CLANG_PATH")
}

func TestRun_LexErrorReportsAndExitsOne(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.zg")
	require.NoError(t, os.WriteFile(input, []byte("procedure main { @ }"), 0o644))
	t.Setenv("ZIGET_CLANG_PATH", "/usr/bin/clang")

	var buf bytes.Buffer
	opts := &Options{InputFile: input, Output: filepath.Join(dir, "a.out")}
	code := Run(opts, diag.New(&buf))
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "LEX")
}

func TestRun_ParseErrorReportsAndExitsOne(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.zg")
	require.NoError(t, os.WriteFile(input, []byte("procedure main { define x }"), 0o644))
	t.Setenv("ZIGET_CLANG_PATH", "/usr/bin/clang")

	var buf bytes.Buffer
	opts := &Options{InputFile: input, Output: filepath.Join(dir, "a.out")}
	code := Run(opts, diag.New(&buf))
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "PARSE")
}
