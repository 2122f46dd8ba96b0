package project

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// InterpreterConfig is myst.toml's [interpreter] table (SPEC_FULL.md §1.3).
type InterpreterConfig struct {
	TraceLevel     string `toml:"trace_level"`
	TraceMode      string `toml:"trace_mode"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	CallStackLimit int    `toml:"call_stack_limit"`
}

// EntryConfig is myst.toml's [entry] table.
type EntryConfig struct {
	Main string `toml:"main"`
}

// Manifest is the decoded form of myst.toml.
type Manifest struct {
	Interpreter InterpreterConfig `toml:"interpreter"`
	Entry       EntryConfig       `toml:"entry"`
}

// DefaultManifest returns the values myst init scaffolds and cmd/myst falls
// back to when no myst.toml is found.
func DefaultManifest() Manifest {
	return Manifest{
		Interpreter: InterpreterConfig{
			TraceLevel:     "off",
			TraceMode:      "ring",
			MaxDiagnostics: 50,
			CallStackLimit: 4096,
		},
		Entry: EntryConfig{Main: "main.myst"},
	}
}

// LoadManifest parses myst.toml at path. Decoding into a Manifest already
// populated with DefaultManifest's values means an absent [interpreter] or
// [entry] table (or an absent field within one) simply leaves that
// default untouched, the same tolerant-decode shape LoadProjectModules
// uses for an absent [modules] table.
func LoadManifest(path string) (Manifest, error) {
	m := DefaultManifest()
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return m, nil
}
