package cmd

import (
	"errors"
	"os"

	"n8nctl/internal/catalog"
	"n8nctl/internal/compose"
	"n8nctl/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands. These follow common conventions; cancellation
// is not a failure and exits with success.
const (
	// ExitCodeSuccess indicates successful execution (including a user
	// cancelling the setup).
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeConfiguration indicates a supplied service id that is not in
	// the catalog.
	ExitCodeConfiguration = 2
	// ExitCodeBackendMissing indicates the deployment backend binary could
	// not be found.
	ExitCodeBackendMissing = 3
)

// rootCmd represents the base command for the n8nctl application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "n8nctl",
	Short: "Set up n8n with optional services on a Raspberry Pi",
	Long: `n8nctl walks you through selecting optional services (reverse proxy,
vector database, web server, database, monitoring) for an n8n deployment
and delegates to the deployment backend to stand them up.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if verbose {
			level = logging.LevelDebug
		}
		logging.InitForCLI(level, cmd.ErrOrStderr())
	},
}

var verbose bool

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles
// subcommands and flags. This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "n8nctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var unknownService *catalog.UnknownServiceError
	if errors.As(err, &unknownService) {
		return ExitCodeConfiguration
	}

	var backendMissing *compose.BackendMissingError
	if errors.As(err, &backendMissing) {
		return ExitCodeBackendMissing
	}

	// Default to general error
	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
