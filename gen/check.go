package gen

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/teranos/wrapgen/config"
	"github.com/teranos/wrapgen/emit"
	"github.com/teranos/wrapgen/errors"
)

// Check generates into a temporary directory and compares the result with
// the configured output. Hooks are not run and nothing in output_dir is
// touched.
func Check(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*emit.CheckResult, error) {
	tempDir, err := os.MkdirTemp("", "wrapgen-check-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	run := NewRun(cfg, log, WithOutputRoot(tempDir), WithoutHooks())
	summary, err := run.Execute(ctx)
	if err != nil {
		return nil, err
	}

	result, err := emit.CompareDirectories(summary.PackageDir, emit.PackageDir(cfg.OutputDir, cfg.PackageName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to compare directories")
	}
	return result, nil
}
