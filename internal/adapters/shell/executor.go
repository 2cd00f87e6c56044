// Package shell runs external commands, streaming their output to the logger.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/liner/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor runs commands under a PTY when available, falling back to pipes.
type Executor struct {
	logger ports.Logger
	usePTY bool
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		usePTY: true,
	}
}

// newPipeExecutor creates an Executor that never allocates a PTY (used for testing).
func newPipeExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Run executes name with args and waits for it to complete.
// Every output line is sent to the logger.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	out := &logWriter{logger: e.logger}
	defer func() { _ = out.Close() }()

	var err error
	if e.usePTY {
		err = e.runPTY(ctx, out, name, args)
	} else {
		err = e.runPipes(ctx, out, name, args)
	}
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	cmdErr := zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	return zerr.With(cmdErr, "command", strings.Join(append([]string{name}, args...), " "))
}

func (e *Executor) runPTY(ctx context.Context, out io.Writer, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // command built by the installer

	ptmx, err := pty.Start(cmd)
	if err != nil {
		e.logger.Debug("pty unavailable, using pipes: " + err.Error())
		return e.runPipes(ctx, out, name, args)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// PTY merges stdout and stderr. The copy ends with EIO once the child exits.
		_, _ = io.Copy(out, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone
	_ = ptmx.Close()
	return err
}

func (e *Executor) runPipes(ctx context.Context, out io.Writer, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // command built by the installer
	cmd.Stdout = out
	cmd.Stderr = out
	return cmd.Run()
}

type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	msg := strings.TrimSuffix(string(line), "\r")
	if strings.TrimSpace(msg) == "" {
		return
	}
	w.logger.Info(msg)
}
