// Package tarnir is the naming layer of the Tarn whole-program IR: canonical
// names, lazy-resolving references, qualified-name rendering, and the tooling
// built on top of them.
//
// The layers, bottom up:
//
//   - ir: the declaration graph, the canonical-name tree, and references.
//   - printer: qualified-name and type rendering, escaping, program dumps.
//   - loader: YAML library manifests in txtar bundles -> linked ir.Program.
//   - namediff: name-surface inventories and bundle-to-bundle diffing.
//   - explorer: an HTTP service for exploring a loaded program.
//
// This package only re-exports the common entry point; most callers import
// the layer they need directly.
package tarnir

import (
	"log/slog"

	"github.com/tarnlang/tarnir/ir"
	"github.com/tarnlang/tarnir/loader"
)

// Version is the library version. The tarnir command derives its own version
// from build info and reports this string for development builds.
const Version = "0.1.0"

// Load parses a txtar program bundle into a linked IR program.
func Load(data []byte, logger *slog.Logger) (*ir.Program, error) {
	return loader.LoadBundle(data, loader.Options{Logger: logger})
}

// LoadFile reads a txtar program bundle from disk and loads it.
func LoadFile(path string, logger *slog.Logger) (*ir.Program, error) {
	return loader.LoadBundleFile(path, loader.Options{Logger: logger})
}
