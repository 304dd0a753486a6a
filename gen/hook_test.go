package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/wrapgen/errors"
)

func TestAfterGenerateHook(t *testing.T) {
	p := newProject(t)
	p.cfg.Hooks.AfterGenerate = `sh -c 'echo "$WRAPGEN_RUN_ID $WRAPGEN_PACKAGE_DIR" > hook.out'`

	summary, err := execute(t, p)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(p.dir, "hook.out"))
	require.NoError(t, err)
	assert.Equal(t, summary.RunID+" "+summary.PackageDir, strings.TrimSpace(string(data)))
}

func TestAfterGenerateHookSkipped(t *testing.T) {
	p := newProject(t)
	p.cfg.Hooks.AfterGenerate = `sh -c 'touch hook.out'`

	_, err := execute(t, p, WithoutHooks())
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(p.dir, "hook.out"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAfterGenerateHookFailures(t *testing.T) {
	p := newProject(t)
	p.cfg.Hooks.AfterGenerate = `echo "unterminated`
	_, err := execute(t, p)
	assert.True(t, errors.Is(err, errors.ErrMalformedConfiguration))

	p.cfg.Hooks.AfterGenerate = `sh -c 'exit 3'`
	_, err = execute(t, p)
	assert.ErrorContains(t, err, "after_generate hook")
}

func TestHookOutputSplitsLines(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	out := &hookOutput{log: zap.New(core).Sugar()}

	n, err := out.Write([]byte("first\nsec"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, 1, logs.Len())

	_, _ = out.Write([]byte("ond\nlast"))
	assert.Equal(t, 2, logs.Len())

	out.Flush()
	assert.Empty(t, out.buf.String())

	var messages []string
	for _, entry := range logs.All() {
		messages = append(messages, entry.ContextMap()["message"].(string))
	}
	assert.Equal(t, []string{"first", "second", "last"}, messages)
}

func TestAfterGenerateHookLogsUnterminatedOutput(t *testing.T) {
	p := newProject(t)
	p.cfg.Hooks.AfterGenerate = `printf 'no newline'`

	core, logs := observer.New(zapcore.InfoLevel)
	_, err := NewRun(p.cfg, zap.New(core).Sugar()).Execute(context.Background())
	require.NoError(t, err)

	hookLogs := logs.FilterMessage("Hook output").All()
	require.Len(t, hookLogs, 1)
	assert.Equal(t, "no newline", hookLogs[0].ContextMap()["message"])
	assert.NotEmpty(t, hookLogs[0].ContextMap()["run_id"])
}
