package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func nopLog() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestCheck(t *testing.T) {
	p := newProject(t)
	ctx := context.Background()

	result, err := Check(ctx, p.cfg, nopLog())
	require.NoError(t, err)
	assert.False(t, result.UpToDate)
	assert.Equal(t, []string{"ActivityMainLayout.java", "HeaderLayout.java"}, result.Missing)

	_, err = execute(t, p)
	require.NoError(t, err)

	result, err = Check(ctx, p.cfg, nopLog())
	require.NoError(t, err)
	assert.True(t, result.UpToDate)

	p.write(t, "res/layout/header.xml", `<FrameLayout><TextView android:id="@+id/subtitle"/></FrameLayout>`)
	stale := filepath.Join(p.packageDir(), "RemovedLayout.java")
	require.NoError(t, os.WriteFile(stale, []byte("// This file is autogenerated. Please do not edit it.\n"), 0o644))

	result, err = Check(ctx, p.cfg, nopLog())
	require.NoError(t, err)
	assert.False(t, result.UpToDate)
	assert.Equal(t, []string{"ActivityMainLayout.java", "HeaderLayout.java"}, result.Differing)
	assert.Equal(t, []string{"RemovedLayout.java"}, result.Stale)
	assert.Empty(t, result.Missing)
}
