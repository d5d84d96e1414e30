package compose

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"n8nctl/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shBridge fakes the deployment backend with a shell snippet. The bridge
// appends its subcommand ("ps", "logs", ...) after the snippet, where the
// shell treats it as $0 and ignores it.
func shBridge(script string, out, errOut *bytes.Buffer) *Bridge {
	return &Bridge{
		binary: "sh",
		args:   []string{"-c", script},
		out:    out,
		errOut: errOut,
	}
}

func TestStatus_BackendMissing(t *testing.T) {
	b := &Bridge{binary: "n8nctl-test-no-such-binary"}

	_, err := b.Status(context.Background())
	require.Error(t, err)

	var missing *BackendMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "n8nctl-test-no-such-binary", missing.Binary)
	assert.Contains(t, err.Error(), "not found on PATH")
}

func TestStatus_EmptyOutputIsNotAnError(t *testing.T) {
	var out, errOut bytes.Buffer
	b := shBridge("true", &out, &errOut)

	output, err := b.Status(context.Background())
	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestStatus_ReturnsRawOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	b := shBridge(`printf 'NAME\tSTATUS\nn8n\trunning\n'`, &out, &errOut)

	output, err := b.Status(context.Background())
	require.NoError(t, err)
	assert.Contains(t, output, "n8n")
	assert.Contains(t, output, "running")
}

func TestStatus_NonZeroExit(t *testing.T) {
	var out, errOut bytes.Buffer
	b := shBridge("echo oops >&2; exit 1", &out, &errOut)

	_, err := b.Status(context.Background())
	require.Error(t, err)

	var invocation *BackendInvocationError
	require.True(t, errors.As(err, &invocation))
	assert.Contains(t, invocation.Stderr, "oops")
	assert.Contains(t, err.Error(), "oops")
}

func TestLogs_FiniteWithoutFollow(t *testing.T) {
	var out, errOut bytes.Buffer
	b := shBridge("echo line1; echo line2", &out, &errOut)

	err := b.Logs(context.Background(), "", false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "line1")
	assert.Contains(t, out.String(), "line2")
}

func TestLogs_PassesFollowAndService(t *testing.T) {
	var out, errOut bytes.Buffer
	// Echo the arguments the bridge appended after the snippet.
	b := &Bridge{
		binary: "sh",
		args:   []string{"-c", `echo "$@"`, "backend"},
		out:    &out,
		errOut: &errOut,
	}

	err := b.Logs(context.Background(), "qdrant", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "logs -f qdrant")
}

func TestLogs_NonZeroExit(t *testing.T) {
	var out, errOut bytes.Buffer
	b := shBridge("echo broken >&2; exit 2", &out, &errOut)

	err := b.Logs(context.Background(), "", false)
	require.Error(t, err)

	var invocation *BackendInvocationError
	require.True(t, errors.As(err, &invocation))
	assert.Contains(t, invocation.Stderr, "broken")
}

func TestLogs_CancellationTerminatesBackend(t *testing.T) {
	var out, errOut bytes.Buffer
	b := shBridge("sleep 30", &out, &errOut)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := b.Logs(ctx, "", true)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second, "cancellation must not wait for the backend to finish")
}

func TestNew_UsesConfiguredBackendAndWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := config.Config{Backend: "sh", ComposeArgs: []string{"-c", "echo hi"}}

	err := New(cfg, &out, &errOut).Logs(context.Background(), "", false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "hi")
}

func TestLogs_BackendMissing(t *testing.T) {
	b := &Bridge{binary: "n8nctl-test-no-such-binary"}

	err := b.Logs(context.Background(), "", false)
	assert.True(t, errors.Is(err, &BackendMissingError{}))
}
