package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"n8nctl/internal/access"
	"n8nctl/internal/catalog"
	"n8nctl/internal/config"
	"n8nctl/internal/prompt"
	"n8nctl/internal/workflow"
	"n8nctl/pkg/logging"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var (
	setupDebug    bool
	setupServices []string
)

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the interactive n8n setup",
	Long: `Run the interactive n8n setup.

Presents the catalog of optional services for selection, asks for
confirmation and then walks through the configuration steps. Services can
be preselected with --service to skip the interactive prompt entirely.

Examples:
  n8nctl setup
  n8nctl setup --service traefik --service qdrant
  n8nctl setup --debug`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&setupDebug, "debug", false, "Run in debug mode (don't start services)")
	setupCmd.Flags().StringArrayVar(&setupServices, "service", nil, "Pre-select a service (repeatable)")
}

func runSetup(cmd *cobra.Command, args []string) error {
	if setupDebug {
		logging.InitForCLI(logging.LevelDebug, cmd.ErrOrStderr())
	}

	cfg, err := config.LoadConfig(config.GetDefaultConfigPathOrPanic())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cat := catalog.Default()

	printBanner(out)

	prompter := prompt.New()

	var selection catalog.Selection
	if len(setupServices) > 0 {
		// Selection supplied out-of-band: skip the prompt, but still
		// validate every id against the catalog.
		selection = catalog.Selection(setupServices).Normalize()
		if err := cat.Validate(selection); err != nil {
			return err
		}
	} else {
		if prompter.Interactive() {
			printCatalogTable(out, cat)
		}
		selection, err = prompter.SelectServices(cat, catalog.Selection(cfg.DefaultServices))
		if err != nil {
			return err
		}
		// The preselected set comes from the config file, so it is
		// out-of-band input like --service and gets the same validation.
		if err := cat.Validate(selection); err != nil {
			logging.Error("Setup", err, "selected services failed catalog validation")
			return err
		}
	}

	if len(selection) == 0 {
		fmt.Fprintln(out, text.FgYellow.Sprint("No services selected. Exiting."))
		return nil
	}

	fmt.Fprintf(out, "\n%s %s\n", text.FgBlue.Sprint("Selected services:"), strings.Join(selection, ", "))

	if setupDebug {
		fmt.Fprintln(out, text.FgYellow.Sprint("Debug mode: configuration will be generated but services won't start"))
	} else if !prompter.Confirm("Continue with setup?", true) {
		fmt.Fprintln(out, text.FgYellow.Sprint("Setup cancelled."))
		return nil
	}

	session := workflow.NewSession(selection, setupDebug)
	logging.Debug("Setup", "session %s starting with services: %s", session.ID, strings.Join(selection, ", "))

	runner := workflow.NewRunner(out, session.DryRun)
	steps := workflow.Steps(session, workflow.SimulatedApplier{Delay: 500 * time.Millisecond})
	if err := runner.Run(cmd.Context(), steps); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s\n", text.FgGreen.Sprint("✅ Setup completed successfully!"))

	fmt.Fprintf(out, "\n%s\n", text.FgGreen.Sprint("🌐 Access your services at:"))
	for _, endpoint := range access.Summarize(selection, cfg.Domain, cfg.N8NPort) {
		fmt.Fprintf(out, "• %s: %s\n", endpoint.Label, endpoint.URL)
	}
	return nil
}

func printBanner(out io.Writer) {
	fmt.Fprintf(out, "\n%s\n%s\n\n",
		text.Bold.Sprint("🚀 n8n Raspberry Pi Setup"),
		"A comprehensive, modular setup for deploying n8n with optional services.")
}

// printCatalogTable renders the available services as a table.
func printCatalogTable(out io.Writer, cat catalog.Catalog) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Available Services")
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("SERVICE"),
		text.FgHiCyan.Sprint("DESCRIPTION"),
		text.FgHiCyan.Sprint("STATUS"),
	})
	for _, svc := range cat {
		t.AppendRow(table.Row{svc.ID, svc.Description, "✅ Available"})
	}
	t.Render()
}
