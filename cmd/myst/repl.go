package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"myst/internal/interp"
	"myst/internal/parse"
	"myst/internal/rtfmt"
	"myst/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive myst session",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, _ []string) error {
	colorOpt, err := colorOptions(cmd)
	if err != nil {
		return err
	}
	it := interp.New()
	warm, err := cmd.Root().PersistentFlags().GetBool("warm")
	if err != nil {
		return err
	}
	if warm {
		if err := it.WarmStart("myst"); err != nil {
			fmt.Fprintf(os.Stderr, "myst: warm-start failed: %v\n", err)
		}
		defer func() {
			if err := it.Shutdown(); err != nil {
				fmt.Fprintf(os.Stderr, "myst: failed to persist method cache: %v\n", err)
			}
		}()
	}

	tracer, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	it.Tracer = tracer

	eval := func(line string) (string, bool) {
		program, err := parse.Program([]byte(line), "<repl>")
		if err != nil {
			var b strings.Builder
			rtfmt.PrintError(&b, err, colorOpt)
			return strings.TrimRight(b.String(), "\n"), true
		}
		result, err := it.Run(program)
		if err != nil {
			var b strings.Builder
			rtfmt.PrintError(&b, err, colorOpt)
			return strings.TrimRight(b.String(), "\n"), true
		}
		var b strings.Builder
		rtfmt.Print(&b, result, colorOpt)
		return strings.TrimRight(b.String(), "\n"), false
	}

	model := ui.NewReplModel("myst> ", eval)
	p := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	return nil
}
