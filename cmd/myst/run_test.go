package main

import (
	"testing"

	"github.com/spf13/cobra"

	"myst/internal/project"
)

func newTestRootCmd() *cobra.Command {
	root := &cobra.Command{Use: "myst"}
	root.PersistentFlags().String("color", "auto", "")
	root.PersistentFlags().String("trace-level", "off", "")
	root.PersistentFlags().String("trace-mode", "ring", "")
	return root
}

func TestColorOptionsRespectsExplicitFlag(t *testing.T) {
	root := newTestRootCmd()
	if err := root.PersistentFlags().Set("color", "on"); err != nil {
		t.Fatalf("set color flag: %v", err)
	}
	opt, err := colorOptions(root)
	if err != nil {
		t.Fatalf("colorOptions: %v", err)
	}
	if !opt.Color {
		t.Fatalf("expected Color=true when --color=on")
	}

	if err := root.PersistentFlags().Set("color", "off"); err != nil {
		t.Fatalf("set color flag: %v", err)
	}
	opt, err = colorOptions(root)
	if err != nil {
		t.Fatalf("colorOptions: %v", err)
	}
	if opt.Color {
		t.Fatalf("expected Color=false when --color=off")
	}
}

func TestApplyManifestTraceDefaultsSkipsExplicitFlags(t *testing.T) {
	root := newTestRootCmd()
	if err := root.PersistentFlags().Set("trace-level", "debug"); err != nil {
		t.Fatalf("set trace-level flag: %v", err)
	}
	manifest := project.DefaultManifest()
	manifest.Interpreter.TraceLevel = "detail"
	manifest.Interpreter.TraceMode = "stream"

	applyManifestTraceDefaults(root, manifest)

	if got, _ := root.PersistentFlags().GetString("trace-level"); got != "debug" {
		t.Fatalf("trace-level = %q, want explicit flag value preserved (debug)", got)
	}
	if got, _ := root.PersistentFlags().GetString("trace-mode"); got != "stream" {
		t.Fatalf("trace-mode = %q, want manifest default (stream) since the flag was never set", got)
	}
}

func TestApplyManifestTraceDefaultsNoopOnEmptyManifestFields(t *testing.T) {
	root := newTestRootCmd()
	applyManifestTraceDefaults(root, project.Manifest{})

	if got, _ := root.PersistentFlags().GetString("trace-level"); got != "off" {
		t.Fatalf("trace-level = %q, want untouched default (off)", got)
	}
	if got, _ := root.PersistentFlags().GetString("trace-mode"); got != "ring" {
		t.Fatalf("trace-mode = %q, want untouched default (ring)", got)
	}
}
