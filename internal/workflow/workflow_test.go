package workflow

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"n8nctl/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingApplier records which operations were invoked.
type recordingApplier struct {
	checked   bool
	applied   []string
	finalized bool
	failOn    string
}

func (a *recordingApplier) CheckDependencies(ctx context.Context) error {
	a.checked = true
	return nil
}

func (a *recordingApplier) Apply(ctx context.Context, serviceID string) error {
	if serviceID == a.failOn {
		return errors.New("boom")
	}
	a.applied = append(a.applied, serviceID)
	return nil
}

func (a *recordingApplier) Finalize(ctx context.Context) error {
	a.finalized = true
	return nil
}

func TestNewSession(t *testing.T) {
	sel := catalog.Selection{"traefik"}

	first := NewSession(sel, true)
	second := NewSession(sel, true)

	assert.True(t, first.DryRun)
	assert.Equal(t, sel, first.Selection)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSteps_OrderAndDescriptions(t *testing.T) {
	session := NewSession(catalog.Selection{"traefik", "postgres"}, false)
	steps := Steps(session, &recordingApplier{})

	var descriptions []string
	for _, step := range steps {
		descriptions = append(descriptions, step.Description)
	}

	assert.Equal(t, []string{
		"Checking dependencies",
		"Configuring traefik",
		"Configuring postgres",
		"Generating configuration files",
	}, descriptions)
}

func TestRunner_Run_InvokesAllWork(t *testing.T) {
	applier := &recordingApplier{}
	session := NewSession(catalog.Selection{"traefik", "qdrant"}, false)
	runner := NewRunner(io.Discard, false)

	err := runner.Run(context.Background(), Steps(session, applier))
	require.NoError(t, err)

	assert.True(t, applier.checked)
	assert.Equal(t, []string{"traefik", "qdrant"}, applier.applied)
	assert.True(t, applier.finalized)
}

func TestRunner_Run_DryRunExecutesNoWork(t *testing.T) {
	applier := &recordingApplier{}
	session := NewSession(catalog.Selection{"traefik", "qdrant"}, true)
	runner := NewRunner(io.Discard, true)

	err := runner.Run(context.Background(), Steps(session, applier))
	require.NoError(t, err)

	assert.False(t, applier.checked)
	assert.Empty(t, applier.applied)
	assert.False(t, applier.finalized)
}

func TestRunner_Run_FailureAbortsRemainingSteps(t *testing.T) {
	applier := &recordingApplier{failOn: "qdrant"}
	session := NewSession(catalog.Selection{"traefik", "qdrant", "postgres"}, false)
	runner := NewRunner(io.Discard, false)

	err := runner.Run(context.Background(), Steps(session, applier))
	require.Error(t, err)

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, "Configuring qdrant", stepErr.Description)
	assert.EqualError(t, stepErr.Err, "boom")

	// traefik completed and is left as-is, postgres was never applied and
	// the final step never ran.
	assert.Equal(t, []string{"traefik"}, applier.applied)
	assert.False(t, applier.finalized)
}

func TestSimulatedApplier_HonorsCancellation(t *testing.T) {
	applier := SimulatedApplier{Delay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := applier.Apply(ctx, "traefik")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStepError_Message(t *testing.T) {
	err := &StepError{Description: "Configuring nginx", Err: errors.New("disk full")}

	assert.Equal(t, `step "Configuring nginx" failed: disk full`, err.Error())
	assert.EqualError(t, errors.Unwrap(err), "disk full")
}
