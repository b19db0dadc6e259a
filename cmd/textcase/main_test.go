package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// runCmd runs the root command with args and returns its standard output.
func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runWithOptions(t, newOptions(), stdin, args...)
}

func runWithOptions(t *testing.T, opts *options, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(opts)
	var stdout, stderr bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := execute(root, opts)
	return stdout.String(), err
}

// syncBuffer is a zapcore.WriteSyncer that records calls to Sync.
type syncBuffer struct {
	bytes.Buffer
	syncs int
}

func (b *syncBuffer) Sync() error {
	b.syncs++
	return nil
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"alternate", []string{"alternate", "longstring", "Hi"}, "lOnGsTrInG\nHi\n"},
		{"is-alternate", []string{"is-alternate", "lOnGsTrInG", "longstring"}, "true\nfalse\n"},
		{"title", []string{"title", "the big story"}, "The Big Story\n"},
		{"is-title", []string{"is-title", "The Big Story", "The big Story"}, "true\nfalse\n"},
		{"initials", []string{"initials", "John Smith"}, "J. S.\n"},
		{"initials-flags", []string{"initials", "--capitalize=false", "--include-space=false", "john smith"}, "j.s.\n"},
		{"index-all", []string{"index-all", "--char", "l", "Hello", "Bob"}, "2 3\n-1\n"},
		{"char-right", []string{"char-right", "--index", "1", "hello"}, "l\n"},
		{"char-right-out-of-range", []string{"char-right", "--index", "10", "hello"}, "\n"},
		{"char-mid", []string{"char-mid", "--start", "1", "--count", "2", "hello"}, "l\n"},
		{"substr", []string{"substr", "--start", "3", "--end", "1", "hello"}, "el\n"},
		{"count", []string{"count", "--needle", "ll", "lll"}, "2\n"},
		{"count-ignore-case", []string{"count", "-n", "l", "-i", "HeLLo"}, "2\n"},
		{"reverse", []string{"reverse", "héllo"}, "olléh\n"},
		{"index-of", []string{"index-of", "--substr", "ken", "chicken", "für"}, "4\n-1\n"},
		{"is-spaces", []string{"is-spaces", "   ", " a "}, "true\nfalse\n"},
		{"is-repeated", []string{"is-repeated", "aaaa", "aaab"}, "true\nfalse\n"},
		{"has-vowels", []string{"has-vowels", "rhythm", "hello"}, "false\ntrue\n"},
		{"is-numeric", []string{"is-numeric", "12453", "234d3"}, "true\nfalse\n"},
		{"has-numbers", []string{"has-numbers", "hello", "h3llo"}, "false\ntrue\n"},
		{"is-alnum", []string{"is-alnum", "Test1254", "$chool!"}, "true\nfalse\n"},
		{"is-letters", []string{"is-letters", "Hi", "Hi123"}, "true\nfalse\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCmd(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNoInput(t *testing.T) {
	_, err := runCmd(t, "", "alternate")
	assert.ErrorIs(t, err, errNoInput)
}

func TestInvalidArguments(t *testing.T) {
	for _, args := range [][]string{
		{"index-all", "--char", "ab", "Hello"},
		{"index-all", "Hello"},
		{"substr", "--start", "-1", "--end", "2", "hello"},
		{"count", "hello"},
	} {
		_, err := runCmd(t, "", args...)
		assert.Error(t, err, "args: %q", args)
	}
}

func TestFileInput(t *testing.T) {
	path := writeFile(t, "input.txt", "hello world\nfoo bar\n")
	got, err := runCmd(t, "", "title", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "Hello World\nFoo Bar\n", got)

	_, err = runCmd(t, "", "title", "--file", path, "extra")
	assert.Error(t, err)

	_, err = runCmd(t, "", "title", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLineTooLong(t *testing.T) {
	path := writeFile(t, "long.txt", "short\n"+strings.Repeat("x", 2*1024*1024)+"\n")
	_, err := runCmd(t, "", "reverse", "--file", path)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestLoggerSynced(t *testing.T) {
	// Failing commands skip cobra's post run hooks.
	sink := &syncBuffer{}
	opts := newOptions()
	opts.logSink = sink
	_, err := runWithOptions(t, opts, "", "--verbose", "alternate")
	require.ErrorIs(t, err, errNoInput)
	assert.Equal(t, 1, sink.syncs)
	assert.Contains(t, sink.String(), "Command failed")

	sink = &syncBuffer{}
	opts = newOptions()
	opts.logSink = sink
	got, err := runWithOptions(t, opts, "abc", "--verbose", "reverse", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "cba\n", got)
	assert.Equal(t, 1, sink.syncs)
	assert.Contains(t, sink.String(), "Processed input")
}

func TestStdinInput(t *testing.T) {
	got, err := runCmd(t, "abc\nxyz", "reverse", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "cba\nzyx\n", got)
}

func TestConfig(t *testing.T) {
	path := writeFile(t, "config.yaml", "capitalize: false\ninclude_space: false\nignore_case: true\n")

	got, err := runCmd(t, "", "--config", path, "initials", "john smith")
	require.NoError(t, err)
	assert.Equal(t, "j.s.\n", got)

	// Flags override the config file.
	got, err = runCmd(t, "", "--config", path, "initials", "--include-space", "john smith")
	require.NoError(t, err)
	assert.Equal(t, "j. s.\n", got)

	got, err = runCmd(t, "", "--config", path, "count", "-n", "l", "HeLLo")
	require.NoError(t, err)
	assert.Equal(t, "2\n", got)

	got, err = runCmd(t, "", "--config", path, "count", "-n", "l", "--ignore-case=false", "HeLLo")
	require.NoError(t, err)
	assert.Equal(t, "0\n", got)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "partial.yaml", "progress: false\n"))
	require.NoError(t, err)
	want := DefaultConfig()
	want.Progress = false
	assert.Equal(t, want, cfg)

	cfg, err = LoadConfig(writeFile(t, "config.toml", "capitalize = false\nignore_case = true\n"))
	require.NoError(t, err)
	want = DefaultConfig()
	want.Capitalize = false
	want.IgnoreCase = true
	assert.Equal(t, want, cfg)

	_, err = LoadConfig(writeFile(t, "bad.toml", "capitalize = \n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "bad.yaml", "capitalize: [1, 2\n"))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatInts(t *testing.T) {
	assert.Equal(t, "-1", formatInts([]int{-1}))
	assert.Equal(t, "0 4 9", formatInts([]int{0, 4, 9}))
	assert.Equal(t, "", formatInts(nil))
}
