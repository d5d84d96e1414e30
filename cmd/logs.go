package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"n8nctl/internal/compose"
	"n8nctl/internal/config"

	"github.com/spf13/cobra"
)

var logsFollow bool

// logsCmd represents the logs command
var logsCmd = &cobra.Command{
	Use:   "logs [service]",
	Short: "Show logs for services",
	Long: `Show logs for all services, or for a single named service.

With --follow the log stream continues until interrupted; Ctrl+C stops
both n8nctl and the backend process it spawned.

Examples:
  n8nctl logs
  n8nctl logs traefik
  n8nctl logs n8n -f`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output")
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(config.GetDefaultConfigPathOrPanic())
	if err != nil {
		return err
	}

	service := ""
	if len(args) > 0 {
		service = args[0]
	}

	// A user interrupt must terminate the backend process as well, so the
	// stream is driven by a signal-aware context.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return compose.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()).Logs(ctx, service, logsFollow)
}
