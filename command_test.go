package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gobf/internal/logio"
)

type commandResult struct {
	stdout string
	stderr string
	err    error
}

func runCommand(t *testing.T, stdin string, args ...string) (res commandResult) {
	var stdout, stderr bytes.Buffer
	lw := &logio.Writer{Logf: func(mess string, args ...interface{}) {
		t.Logf("stderr: "+mess, args...)
	}}
	defer lw.Close()
	cmd := command{
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: io.MultiWriter(&stderr, lw),
	}
	t.Logf("gobf %q", args)
	res.err = cmd.main(context.Background(), args)
	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

func TestCommand(t *testing.T) {
	t.Run("hello", func(t *testing.T) {
		res := runCommand(t, "", "testdata/hello.b")
		require.NoError(t, res.err)
		assert.Equal(t, "Hello World!\n", res.stdout)
		assert.Equal(t, "", res.stderr, "expected quiet stderr")
	})

	t.Run("add", func(t *testing.T) {
		res := runCommand(t, "\x03\x04", "testdata/add.b")
		require.NoError(t, res.err)
		assert.Equal(t, "\x07", res.stdout)
	})

	t.Run("sum", func(t *testing.T) {
		res := runCommand(t, "\x02\x03\x00", "testdata/sum.b")
		require.NoError(t, res.err)
		assert.Equal(t, "\x05", res.stdout)
	})

	t.Run("sum without zero", func(t *testing.T) {
		res := runCommand(t, "\x02\x03", "testdata/sum.b")
		assert.True(t, errors.Is(res.err, ErrInputExhausted), "expected ErrInputExhausted, got %v", res.err)
		assert.Equal(t, "", res.stdout)
	})

	t.Run("syntax error", func(t *testing.T) {
		res := runCommand(t, "", "testdata/unmatched.b")
		assert.EqualError(t, res.err, "testdata/unmatched.b: syntax error: unmatched ']' @2:2")
	})

	t.Run("step limit", func(t *testing.T) {
		res := runCommand(t, "", "-step-limit", "1000", "testdata/spin.b")
		assert.True(t, errors.Is(res.err, ErrStepLimit), "expected ErrStepLimit, got %v", res.err)
	})

	t.Run("timeout", func(t *testing.T) {
		res := runCommand(t, "", "-timeout", "20ms", "testdata/spin.b")
		assert.True(t, errors.Is(res.err, context.DeadlineExceeded), "expected timeout, got %v", res.err)
	})

	t.Run("usage", func(t *testing.T) {
		res := runCommand(t, "")
		assert.Equal(t, errUsage, res.err)
		assert.Contains(t, res.stderr, "-step-limit")
	})

	t.Run("help", func(t *testing.T) {
		res := runCommand(t, "", "-h")
		assert.NoError(t, res.err)
	})

	t.Run("missing file", func(t *testing.T) {
		res := runCommand(t, "", "testdata/nope.b")
		assert.True(t, errors.Is(res.err, os.ErrNotExist), "expected not exist error, got %v", res.err)
	})

	t.Run("dump", func(t *testing.T) {
		res := runCommand(t, "\x01\x02", "-dump", "-tape-size", "4", "testdata/add.b")
		require.NoError(t, res.err)
		assert.Equal(t, "\x03", res.stdout)
		assert.Equal(t, ""+
			"# Program testdata/add.b\n"+
			"  io read\n"+
			"  ptr +1\n"+
			"  io read\n"+
			"  loop {\n"+
			"    ptr -1\n"+
			"    mem +1\n"+
			"    ptr +1\n"+
			"    mem -1\n"+
			"  }\n"+
			"  ptr -1\n"+
			"  io write\n"+
			"# Tape @0 after 16 steps\n"+
			"  @0 *03  00  00  00\n",
			res.stderr)
	})
}

func TestCommand_config(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gobf.toml")
	teePath := filepath.Join(dir, "out.bin")
	tracePath := filepath.Join(dir, "trace.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
tape-size = 2
step-limit = 10
trace-file = "`+filepath.ToSlash(tracePath)+`"
tee = "`+filepath.ToSlash(teePath)+`"
`), 0o644))

	res := runCommand(t, "", "-config", cfgPath, "testdata/hello.b")
	assert.True(t, errors.Is(res.err, ErrStepLimit), "expected step limit from config, got %v", res.err)

	res = runCommand(t, "", "-config", cfgPath, "-step-limit", "0", "-tape-size", "16", "testdata/hello.b")
	require.NoError(t, res.err)
	assert.Equal(t, "Hello World!\n", res.stdout)

	tee, err := os.ReadFile(teePath)
	require.NoError(t, err)
	assert.Equal(t, "Hello World!\n", string(tee), "expected tee copy")

	trace, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	var sawDone bool
	for _, line := range strings.Split(strings.TrimSpace(string(trace)), "\n") {
		var rec struct {
			Msg    string `json:"msg"`
			Output int    `json:"output"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &rec), "expected JSON trace line %q", line)
		if rec.Msg == "run done" {
			sawDone = true
			assert.Equal(t, 13, rec.Output)
		}
	}
	assert.True(t, sawDone, "expected run summary in trace file")

	res = runCommand(t, "", "-config", filepath.Join(dir, "missing.toml"), "testdata/hello.b")
	assert.Error(t, res.err)
}

func TestCommand_trace(t *testing.T) {
	res := runCommand(t, "\x01\x01", "-trace", "testdata/add.b")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "compiled 10 nodes, tape size 1024, has io: true")
	assert.Contains(t, res.stderr, "read #2 1 @1")
	assert.Contains(t, res.stderr, "write #1 2 @0")
	assert.Contains(t, res.stderr, "run done")
}
