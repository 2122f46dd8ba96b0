package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"myst/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a new myst project",
	Long: `Initialize a new myst project by creating a project manifest (myst.toml)
and a hello-world entry point (main.myst). If [path] is omitted, initializes
the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else if filepath.IsAbs(args[0]) {
		target = args[0]
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = filepath.Join(wd, args[0])
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, "myst.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	manifest := project.DefaultManifest()
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(manifest); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	mainPath := filepath.Join(target, manifest.Entry.Main)
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainMyst()), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", manifest.Entry.Main, err)
		}
		createdMain = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized myst project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - myst.toml\n")
	if createdMain {
		fmt.Fprintf(os.Stdout, "  - %s\n", manifest.Entry.Main)
	} else {
		fmt.Fprintf(os.Stdout, "  - %s (existing)\n", manifest.Entry.Main)
	}
	return nil
}

func defaultMainMyst() string {
	return `# myst hello world (placeholder)
# Note: cmd/myst run cannot yet execute this file; no lexer/parser is wired
# up for the language's surface grammar (see DESIGN.md).

type Greeter
  fn hello()
    "Hello, myst!"
  end
end

Greeter.new().hello()
`
}
