package cmd

import (
	"fmt"
	"strings"

	"n8nctl/internal/compose"
	"n8nctl/internal/config"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show status of running services",
	Long: `Show the status of the deployed services as reported by the
deployment backend. The backend's output is printed verbatim.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(config.GetDefaultConfigPathOrPanic())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, text.FgBlue.Sprint("Checking service status..."))

	output, err := compose.New(cfg, out, cmd.ErrOrStderr()).Status(cmd.Context())
	if err != nil {
		return err
	}

	if strings.TrimSpace(output) == "" {
		fmt.Fprintln(out, text.FgYellow.Sprint("No services are currently running."))
		return nil
	}

	fmt.Fprintf(out, "\n%s\n", text.FgGreen.Sprint("Running services:"))
	fmt.Fprint(out, output)
	return nil
}
