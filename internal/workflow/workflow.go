package workflow

import (
	"context"
	"fmt"
	"io"
	"time"

	"n8nctl/internal/catalog"
	"n8nctl/pkg/logging"

	"github.com/briandowns/spinner"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Session captures one invocation of the setup workflow. Sessions are never
// persisted; the ID only ties log lines of a single run together.
type Session struct {
	ID        uuid.UUID
	Selection catalog.Selection
	DryRun    bool
}

// NewSession creates a session for the given selection.
func NewSession(sel catalog.Selection, dryRun bool) Session {
	return Session{
		ID:        uuid.New(),
		Selection: sel,
		DryRun:    dryRun,
	}
}

// Step is one unit of the setup sequence. Work may be nil for purely
// informational steps.
type Step struct {
	Description string
	Work        func(ctx context.Context) error
}

// StepError indicates that a step's work failed. Steps completed before the
// failure are left as-is; there is no rollback.
type StepError struct {
	// Description identifies the failed step.
	Description string
	// Err is the underlying failure.
	Err error
}

// Error returns a message naming the failed step.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Description, e.Err)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to work with wrapped errors.
func (e *StepError) Is(target error) bool {
	_, ok := target.(*StepError)
	return ok
}

// Runner executes setup steps strictly in order, reporting each step's
// description before execution and its completion after. In dry-run mode
// every description is still reported but no work executes.
type Runner struct {
	out    io.Writer
	dryRun bool
}

// NewRunner creates a runner writing progress output to out.
func NewRunner(out io.Writer, dryRun bool) *Runner {
	return &Runner{out: out, dryRun: dryRun}
}

// Run executes the steps. On the first failure the remaining steps are
// skipped and a *StepError is returned.
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(r.out))
		s.Suffix = " " + step.Description
		s.Start()

		var err error
		if !r.dryRun && step.Work != nil {
			err = step.Work(ctx)
		}
		s.Stop()

		if err != nil {
			fmt.Fprintf(r.out, "%s %s\n", text.FgRed.Sprint("✗"), step.Description)
			return &StepError{Description: step.Description, Err: err}
		}
		fmt.Fprintf(r.out, "%s %s\n", text.FgGreen.Sprint("✓"), step.Description)
	}
	return nil
}

// Applier is the external collaborator that performs the actual
// configuration and provisioning work for a selection. The workflow only
// sequences and reports; everything real happens behind this interface.
type Applier interface {
	// CheckDependencies verifies the environment before any service is
	// configured.
	CheckDependencies(ctx context.Context) error
	// Apply configures a single selected service.
	Apply(ctx context.Context, serviceID string) error
	// Finalize generates the combined configuration files after all
	// services are applied.
	Finalize(ctx context.Context) error
}

// Steps builds the ordered step list for a session against the given
// applier.
func Steps(session Session, applier Applier) []Step {
	steps := []Step{
		{
			Description: "Checking dependencies",
			Work:        applier.CheckDependencies,
		},
	}
	for _, id := range session.Selection {
		id := id // per-iteration copy; required under go < 1.22 loop semantics
		steps = append(steps, Step{
			Description: fmt.Sprintf("Configuring %s", id),
			Work: func(ctx context.Context) error {
				return applier.Apply(ctx, id)
			},
		})
	}
	steps = append(steps, Step{
		Description: "Generating configuration files",
		Work:        applier.Finalize,
	})
	return steps
}

// SimulatedApplier stands in for a real deployment backend integration.
// Each operation only waits for Delay, so the workflow's sequencing and
// failure semantics can be exercised without touching the system.
type SimulatedApplier struct {
	Delay time.Duration
}

func (a SimulatedApplier) CheckDependencies(ctx context.Context) error {
	return a.wait(ctx)
}

func (a SimulatedApplier) Apply(ctx context.Context, serviceID string) error {
	logging.Debug("Workflow", "simulating configuration of %s", serviceID)
	return a.wait(ctx)
}

func (a SimulatedApplier) Finalize(ctx context.Context) error {
	return a.wait(ctx)
}

func (a SimulatedApplier) wait(ctx context.Context) error {
	if a.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(a.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
