// Package compose is the thin bridge to the external deployment backend
// (docker compose by default). It only queries status and retrieves logs;
// standing services up or down is out of its hands.
package compose

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"n8nctl/internal/config"
	"n8nctl/pkg/logging"

	"golang.org/x/sync/errgroup"
)

// BackendMissingError indicates the deployment backend binary is not
// installed or not on PATH.
type BackendMissingError struct {
	// Binary is the executable that could not be found.
	Binary string
}

// Error returns a user-friendly message with actionable guidance.
func (e *BackendMissingError) Error() string {
	return fmt.Sprintf("%s not found on PATH. Please install it first", e.Binary)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *BackendMissingError) Is(target error) bool {
	_, ok := target.(*BackendMissingError)
	return ok
}

// BackendInvocationError indicates the backend ran but exited with a
// failure status.
type BackendInvocationError struct {
	// Args is the full command line that failed.
	Args []string
	// Stderr is whatever diagnostic the backend produced.
	Stderr string
	// Err is the underlying exit error.
	Err error
}

// Error returns the backend's own diagnostic when there is one.
func (e *BackendInvocationError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", strings.Join(e.Args, " "), e.Err)
	if diag := strings.TrimSpace(e.Stderr); diag != "" {
		msg += "\n" + diag
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *BackendInvocationError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to work with wrapped errors.
func (e *BackendInvocationError) Is(target error) bool {
	_, ok := target.(*BackendInvocationError)
	return ok
}

// Bridge invokes the deployment backend. One bridge is created per command
// invocation; it holds no state beyond its configuration and writers.
type Bridge struct {
	binary string
	args   []string
	out    io.Writer
	errOut io.Writer
}

// New creates a bridge for the configured backend, streaming to out and
// errOut.
func New(cfg config.Config, out, errOut io.Writer) *Bridge {
	return &Bridge{
		binary: cfg.Backend,
		args:   cfg.ComposeArgs,
		out:    out,
		errOut: errOut,
	}
}

// Status runs the backend's "list running services" query and returns its
// raw output. Empty output is a valid "nothing running" result, not an
// error.
func (b *Bridge) Status(ctx context.Context) (string, error) {
	if _, err := exec.LookPath(b.binary); err != nil {
		return "", &BackendMissingError{Binary: b.binary}
	}

	args := append(append([]string{}, b.args...), "ps")
	logging.Debug("Compose", "running %s %s", b.binary, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, b.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", b.classify(append([]string{b.binary}, args...), stderr.String(), err)
	}
	return stdout.String(), nil
}

// Logs streams the backend's logs for one service (or all services when
// service is empty) to the bridge's writers. With follow the stream is
// unbounded; cancelling ctx terminates the backend process, which is
// reported as a clean shutdown rather than an error.
func (b *Bridge) Logs(ctx context.Context, service string, follow bool) error {
	if _, err := exec.LookPath(b.binary); err != nil {
		return &BackendMissingError{Binary: b.binary}
	}

	args := append(append([]string{}, b.args...), "logs")
	if follow {
		args = append(args, "-f")
	}
	if service != "" {
		args = append(args, service)
	}
	logging.Debug("Compose", "running %s %s", b.binary, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, b.binary, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	var stderr bytes.Buffer
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to open stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return b.classify(append([]string{b.binary}, args...), "", err)
	}

	g := new(errgroup.Group)
	g.Go(func() error {
		_, err := io.Copy(b.out, stdout)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(b.errOut, &stderr), stderrPipe)
		return err
	})
	copyErr := g.Wait()
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		// User interrupt: the child was terminated on purpose.
		logging.Debug("Compose", "log streaming cancelled")
		return nil
	}
	if waitErr != nil {
		return b.classify(append([]string{b.binary}, args...), stderr.String(), waitErr)
	}
	return copyErr
}

// classify maps raw exec errors onto the bridge's error taxonomy.
func (b *Bridge) classify(cmdline []string, stderr string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return &BackendMissingError{Binary: b.binary}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &BackendInvocationError{Args: cmdline, Stderr: stderr, Err: err}
	}
	return fmt.Errorf("failed to invoke %s: %w", b.binary, err)
}
