/*
File    : ziget/cmd/flags_test.go
Package : cmd
*/
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_DefaultOutputDerivesFromInputStem(t *testing.T) {
	opts, err := ParseArgs([]string{"samples/hello.zg"})
	require.NoError(t, err)
	assert.Equal(t, "samples/hello.zg", opts.InputFile)
	assert.Equal(t, "samples/hello.out", opts.Output)
}

func TestParseArgs_ExplicitOutputIsNotOverridden(t *testing.T) {
	opts, err := ParseArgs([]string{"-o", "mybinary", "hello.zg"})
	require.NoError(t, err)
	assert.Equal(t, "mybinary", opts.Output)
}

func TestParseArgs_NoInputFileLeavesOutputAsDefault(t *testing.T) {
	opts, err := ParseArgs([]string{})
	require.NoError(t, err)
	assert.Equal(t, "", opts.InputFile)
	assert.Equal(t, "a.out", opts.Output)
}

func TestParseArgs_DumpFlagsAreIndependentlyWired(t *testing.T) {
	opts, err := ParseArgs([]string{"-p", "-s", "hello.zg"})
	require.NoError(t, err)
	assert.True(t, opts.DumpParser)
	assert.True(t, opts.DumpSymbol)
	assert.False(t, opts.DumpLexer)
}

func TestStem_PreservesDirectoryComponent(t *testing.T) {
	assert.Equal(t, "samples/hello", stem("samples/hello.zg"))
	assert.Equal(t, "hello", stem("hello.zg"))
}
