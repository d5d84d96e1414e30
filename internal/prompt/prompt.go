// Package prompt implements the interactive selection and confirmation
// prompts of the setup workflow, with an explicit degrade-to-default policy
// for environments without a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"n8nctl/internal/catalog"
	"n8nctl/pkg/logging"

	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// Prompter asks the user questions on a terminal. When no terminal is
// attached it does not fail: every prompt falls back to its default answer
// and a visible warning is emitted.
type Prompter struct {
	in          io.ReadCloser
	out         io.Writer
	interactive bool
}

// New creates a prompter on stdin/stdout. Interactivity is decided up
// front by checking for an attached terminal, not by catching prompt
// failures after the fact.
func New() *Prompter {
	fd := os.Stdin.Fd()
	return &Prompter{
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// Interactive reports whether prompts will actually be shown.
func (p *Prompter) Interactive() bool {
	return p.interactive
}

// SelectServices presents the catalog for multi-selection and returns the
// chosen ids. Without a terminal the preselected set is returned verbatim.
// An empty result means the user chose nothing and the workflow should
// stop.
func (p *Prompter) SelectServices(cat catalog.Catalog, preselected catalog.Selection) (catalog.Selection, error) {
	if !p.interactive {
		logging.Warn("Prompt", "interactive selection not available, falling back to defaults")
		fmt.Fprintln(p.out, text.FgYellow.Sprint("Interactive selection not available."))
		fmt.Fprintf(p.out, "%s %s\n", text.FgBlue.Sprint("Using default services:"), strings.Join(preselected, ", "))
		return preselected, nil
	}

	fmt.Fprintln(p.out, text.Bold.Sprint("Select the services you want to install:"))
	for i, svc := range cat {
		marker := " "
		if preselected.Contains(svc.ID) {
			marker = "*"
		}
		fmt.Fprintf(p.out, "  %s %d) %-12s %s\n", marker, i+1, svc.ID, svc.Description)
	}
	fmt.Fprintf(p.out, "Enter numbers or ids separated by commas, 'none' for no services,\nor press enter to keep the preselected set (%s).\n", strings.Join(preselected, ", "))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "services> ",
		Stdin:           p.in,
		Stdout:          p.out,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Treat ^C as "nothing selected"; the caller stops the workflow.
			return catalog.Selection{}, nil
		}
		if err != nil {
			logging.Warn("Prompt", "input closed, falling back to defaults: %v", err)
			fmt.Fprintf(p.out, "%s %s\n", text.FgYellow.Sprint("Input closed. Using default services:"), strings.Join(preselected, ", "))
			return preselected, nil
		}

		selection, err := parseSelection(line, cat, preselected)
		if err != nil {
			fmt.Fprintln(p.out, text.FgRed.Sprint(err.Error()))
			continue
		}
		return selection, nil
	}
}

// parseSelection turns a line of user input into a selection. Tokens may be
// 1-based catalog indices or service ids, separated by commas or spaces.
func parseSelection(line string, cat catalog.Catalog, preselected catalog.Selection) (catalog.Selection, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return preselected.Normalize(), nil
	}
	if strings.EqualFold(line, "none") {
		return catalog.Selection{}, nil
	}

	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var selection catalog.Selection
	for _, token := range tokens {
		if n, err := strconv.Atoi(token); err == nil {
			if n < 1 || n > len(cat) {
				return nil, fmt.Errorf("no service numbered %d (valid: 1-%d)", n, len(cat))
			}
			selection = append(selection, cat[n-1].ID)
			continue
		}
		if _, ok := cat.Get(token); !ok {
			return nil, fmt.Errorf("unknown service %q", token)
		}
		selection = append(selection, token)
	}
	return selection.Normalize(), nil
}

// Confirm asks a yes/no question with the given default answer. Without a
// terminal the default is returned and a warning is emitted.
func (p *Prompter) Confirm(question string, defaultAnswer bool) bool {
	if !p.interactive {
		logging.Warn("Prompt", "confirmation prompt not available, assuming %t", defaultAnswer)
		fmt.Fprintf(p.out, "%s %t\n", text.FgYellow.Sprintf("Cannot ask %q without a terminal, assuming:", question), defaultAnswer)
		return defaultAnswer
	}

	hint := "[y/N]"
	if defaultAnswer {
		hint = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s ", question, hint)

	reader := bufio.NewReader(p.in)
	response, err := reader.ReadString('\n')
	if err != nil {
		return defaultAnswer
	}

	response = strings.TrimSpace(strings.ToLower(response))
	if response == "" {
		return defaultAnswer
	}
	return response == "y" || response == "yes"
}
