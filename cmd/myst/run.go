package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"myst/internal/ast"
	"myst/internal/interp"
	"myst/internal/parse"
	"myst/internal/project"
	"myst/internal/rtfmt"
	"myst/internal/trace"
	"myst/internal/ui"
	"myst/internal/value"
)

var runCmd = &cobra.Command{
	Use:   "run <file.myst>",
	Short: "Run a myst source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().Bool("progress", false, "show a live per-statement progress view (auto-disabled when not a TTY)")
}

func runRun(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path) // #nosec G304 -- path is a user-provided CLI argument
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	applyManifestTraceDefaults(cmd, loadManifestOrDefault())

	progress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return err
	}
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

	program, parseErr := parse.Program(src, path)
	if parseErr != nil {
		return parseErr
	}

	var result value.Value
	var runErr error
	if progress && isTerminal(os.Stdout) {
		result, runErr = runWithProgress(it, program, path)
	} else {
		var tracer trace.Tracer
		var cleanup func()
		tracer, cleanup, err = setupTracing(cmd)
		if err != nil {
			return err
		}
		defer cleanup()
		it.Tracer = tracer
		result, runErr = it.Run(program)
	}

	if runErr != nil {
		rtfmt.PrintError(os.Stderr, runErr, colorOpt)
		os.Exit(1)
	}
	rtfmt.Print(os.Stdout, result, colorOpt)
	return nil
}

// runWithProgress drives program through it while a bubbletea progress view
// renders the "stmt[i]" spans Interpreter.Run emits, one row per top-level
// statement.
func runWithProgress(it *interp.Interpreter, program *ast.Program, title string) (value.Value, error) {
	chanTracer := trace.NewChanTracer(trace.LevelPhase, 256)
	it.Tracer = chanTracer

	type outcome struct {
		result value.Value
		err    error
	}
	outcomeCh := make(chan outcome, 1)
	go func() {
		res, err := it.Run(program)
		outcomeCh <- outcome{result: res, err: err}
		_ = chanTracer.Close()
	}()

	model := ui.NewProgressModel(title, len(program.Statements), chanTracer.Events())
	p := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, uiErr := p.Run(); uiErr != nil {
		out := <-outcomeCh
		if out.err != nil {
			return nil, out.err
		}
		return nil, uiErr
	}
	out := <-outcomeCh
	return out.result, out.err
}

// applyManifestTraceDefaults lets myst.toml's [interpreter] table set the
// trace-level/trace-mode defaults, without overriding a flag the user set
// explicitly on this invocation.
func applyManifestTraceDefaults(cmd *cobra.Command, manifest project.Manifest) {
	root := cmd.Root()
	if !root.PersistentFlags().Changed("trace-level") && manifest.Interpreter.TraceLevel != "" {
		_ = root.PersistentFlags().Set("trace-level", manifest.Interpreter.TraceLevel)
	}
	if !root.PersistentFlags().Changed("trace-mode") && manifest.Interpreter.TraceMode != "" {
		_ = root.PersistentFlags().Set("trace-mode", manifest.Interpreter.TraceMode)
	}
}

func loadManifestOrDefault() project.Manifest {
	path, ok, err := project.FindManifest(".")
	if err != nil || !ok {
		return project.DefaultManifest()
	}
	m, err := project.LoadManifest(path)
	if err != nil {
		return project.DefaultManifest()
	}
	return m
}

func colorOptions(cmd *cobra.Command) (rtfmt.Options, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return rtfmt.Options{}, err
	}
	switch colorFlag {
	case "on":
		return rtfmt.Options{Color: true}, nil
	case "off":
		return rtfmt.Options{Color: false}, nil
	default:
		return rtfmt.Options{Color: isTerminal(os.Stdout)}, nil
	}
}
