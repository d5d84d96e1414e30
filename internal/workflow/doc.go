// Package workflow sequences the setup steps and reports their progress.
//
// The package deliberately knows nothing about what a step does: all real
// configuration and provisioning work lives behind the Applier interface,
// and the shipped SimulatedApplier only delays. This keeps the sequencing
// and failure semantics stable while a real deployment backend integration
// can be plugged in later.
//
// # Execution Model
//
// Steps run strictly in order. Each step's description is shown before its
// work executes and a completion marker after. On the first failure the
// remaining steps are skipped and a *StepError naming the failed step is
// returned. Completed steps are not rolled back.
//
// # Dry-Run Mode
//
// In dry-run mode (setup --debug) every step description is still rendered
// one by one, but no work callback is invoked.
package workflow
