package gen

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/teranos/wrapgen/errors"
)

// runHook runs a shell-quoted command in the project directory. The command
// sees the run id and the package directory in its environment.
func (r *Run) runHook(ctx context.Context, command string) error {
	args, err := shellquote.Split(command)
	if err != nil {
		return errors.WithHint(
			errors.Wrapf(errors.ErrMalformedConfiguration, "hooks.after_generate %q: %v", command, err),
			"check the quoting of the command")
	}
	if len(args) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = r.cfg.Dir()
	cmd.Env = append(os.Environ(),
		"WRAPGEN_RUN_ID="+r.ID,
		"WRAPGEN_PACKAGE_DIR="+r.PackageDir())

	log := r.log.Named("hook")
	stdout := &hookOutput{log: log}
	stderr := &hookOutput{log: log, stderr: true}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	log.Debugw("Running after_generate hook", "args", args)
	err = cmd.Run()
	stdout.Flush()
	stderr.Flush()
	if err != nil {
		return errors.Wrapf(err, "after_generate hook %q failed", args[0])
	}
	return nil
}

// hookOutput forwards complete lines of hook output to the logger
type hookOutput struct {
	log    *zap.SugaredLogger
	stderr bool
	buf    strings.Builder
}

func (h *hookOutput) Write(p []byte) (int, error) {
	h.buf.Write(p)
	for {
		line, rest, found := strings.Cut(h.buf.String(), "\n")
		if !found {
			break
		}
		h.buf.Reset()
		h.buf.WriteString(rest)

		h.emit(line)
	}
	return len(p), nil
}

// Flush logs output left after the last newline
func (h *hookOutput) Flush() {
	rest := h.buf.String()
	h.buf.Reset()
	h.emit(rest)
}

func (h *hookOutput) emit(line string) {
	if line = strings.TrimSpace(line); line == "" {
		return
	}
	if h.stderr {
		h.log.Warnw("Hook output", "message", line)
	} else {
		h.log.Infow("Hook output", "message", line)
	}
}
