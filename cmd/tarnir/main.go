// Command tarnir inspects, checks, and serves Tarn IR bundles.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/tarnlang/tarnir/explorer"
	"github.com/tarnlang/tarnir/loader"
	"github.com/tarnlang/tarnir/namediff"
	"github.com/tarnlang/tarnir/printer"
)

type CLI struct {
	Dump    DumpCmd    `cmd:"" help:"Print a bundle as readable text."`
	Names   NamesCmd   `cmd:"" help:"List a bundle's name surface."`
	Resolve ResolveCmd `cmd:"" help:"Render one canonical path from a bundle."`
	Check   CheckCmd   `cmd:"" help:"Verify that a bundle's references link."`
	Diff    DiffCmd    `cmd:"" help:"Compare the name surfaces of two bundles."`
	Serve   ServeCmd   `cmd:"" help:"Serve a bundle over HTTP for exploration."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

type DumpCmd struct {
	Bundle       string `arg:"" help:"Path to a txtar bundle." type:"existingfile"`
	Out          string `help:"Write the dump to this file instead of stdout." short:"o" placeholder:"FILE"`
	Qualify      bool   `help:"Qualify declaration references with library names."`
	QualifyTypes bool   `help:"Qualify class and typedef names inside types." name:"qualify-types"`
	Filter       string `help:"Keep only declarations matching this expression, e.g. 'kind == \"Class\"'."`
	Color        string `help:"Colorize output." enum:"auto,always,never" default:"auto"`
}

func (c *DumpCmd) Run() error {
	p, err := loader.LoadBundleFile(c.Bundle, loader.Options{Logger: cliLogger(slog.LevelWarn)})
	if err != nil {
		return err
	}
	opts := printer.Options{
		QualifyDeclarations: c.Qualify,
		QualifyTypes:        c.QualifyTypes,
	}
	if c.Filter != "" {
		f, err := printer.CompileFilter(c.Filter)
		if err != nil {
			return err
		}
		opts.Filter = f
	}

	if c.Out == "" {
		if useColor(c.Color, os.Stdout) {
			opts.Colors = printer.NewColors()
		}
		return printer.NewDumper(os.Stdout, opts).DumpProgram(p)
	}

	// File output only colorizes when forced.
	if c.Color == "always" {
		color.NoColor = false
		opts.Colors = printer.NewColors()
	}
	var buf bytes.Buffer
	if err := printer.NewDumper(&buf, opts).DumpProgram(p); err != nil {
		return err
	}
	return writeFileAtomic(c.Out, buf.Bytes())
}

// writeFileAtomic writes content via a temp file and rename so an interrupted
// dump never leaves a truncated file behind.
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tarnir-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(content)
	closeErr := tmp.Close()
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("set file mode: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

type NamesCmd struct {
	Bundle string `arg:"" help:"Path to a txtar bundle." type:"existingfile"`
	Prefix string `help:"Only names starting with this prefix."`
}

func (c *NamesCmd) Run() error {
	p, err := loader.LoadBundleFile(c.Bundle, loader.Options{Logger: cliLogger(slog.LevelWarn)})
	if err != nil {
		return err
	}
	var out strings.Builder
	for _, line := range namediff.Inventory(p) {
		_, name, _ := strings.Cut(line, "\t")
		if c.Prefix != "" && !strings.HasPrefix(name, c.Prefix) {
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	_, err = os.Stdout.WriteString(out.String())
	return err
}

type ResolveCmd struct {
	Bundle       string   `arg:"" help:"Path to a txtar bundle." type:"existingfile"`
	Segments     []string `arg:"" help:"Canonical path segments below the root."`
	Qualify      bool     `help:"Qualify declaration references with library names."`
	QualifyTypes bool     `help:"Qualify class and typedef names inside types." name:"qualify-types"`
}

func (c *ResolveCmd) Run() error {
	p, err := loader.LoadBundleFile(c.Bundle, loader.Options{Logger: cliLogger(slog.LevelWarn)})
	if err != nil {
		return err
	}
	cn := p.Root()
	for _, seg := range c.Segments {
		cn = cn.PeekChild(seg)
		if cn == nil {
			return fmt.Errorf("canonical name %q not found", strings.Join(c.Segments, "::"))
		}
	}

	fmt.Println(printer.QualifiedCanonicalName(cn, c.Qualify, c.QualifyTypes))
	fmt.Printf("path:   %s\n", cn)
	if node := cn.BoundReference().Node(); node != nil {
		fmt.Printf("linked: true (%s)\n", node.Kind())
	} else {
		fmt.Println("linked: false")
	}
	return nil
}

type CheckCmd struct {
	Bundle   string `arg:"" help:"Path to a txtar bundle." type:"existingfile"`
	Complete bool   `help:"Fail when any reference is unlinked."`
}

func (c *CheckCmd) Run() error {
	p, err := loader.LoadBundleFile(c.Bundle, loader.Options{Logger: cliLogger(slog.LevelWarn)})
	if err != nil {
		return err
	}
	unlinked := loader.CheckProgram(p)
	if len(unlinked) == 0 {
		fmt.Println("ok: all references linked")
		return nil
	}
	for _, u := range unlinked {
		fmt.Printf("unlinked: %s (referenced by %s)\n", u.Path, u.Owner)
	}
	if c.Complete {
		return fmt.Errorf("%d unlinked reference(s)", len(unlinked))
	}
	return nil
}

type DiffCmd struct {
	Before  string `arg:"" help:"Bundle to compare from." type:"existingfile"`
	After   string `arg:"" help:"Bundle to compare to." type:"existingfile"`
	Unified bool   `help:"Print a unified line diff instead of the added/removed summary."`
	Color   string `help:"Colorize output." enum:"auto,always,never" default:"auto"`
}

func (c *DiffCmd) Run() error {
	logger := cliLogger(slog.LevelWarn)
	before, err := loader.LoadBundleFile(c.Before, loader.Options{Logger: logger})
	if err != nil {
		return err
	}
	after, err := loader.LoadBundleFile(c.After, loader.Options{Logger: logger})
	if err != nil {
		return err
	}

	beforeInv := namediff.Inventory(before)
	afterInv := namediff.Inventory(after)
	report := namediff.Compare(beforeInv, afterInv)
	if report.Empty() {
		fmt.Println("no name surface changes")
		return nil
	}

	var colors *namediff.Colors
	if useColor(c.Color, os.Stdout) {
		colors = namediff.NewColors()
	}
	if c.Unified {
		if err := namediff.WriteUnified(os.Stdout, beforeInv, afterInv, colors); err != nil {
			return err
		}
	} else {
		removed, added := plainSprintf, plainSprintf
		if colors != nil {
			removed, added = colors.Removed, colors.Added
		}
		for _, line := range report.Removed {
			fmt.Println(removed("-%s", line))
		}
		for _, line := range report.Added {
			fmt.Println(added("+%s", line))
		}
	}
	return fmt.Errorf("name surface differs: %d added, %d removed", len(report.Added), len(report.Removed))
}

type ServeCmd struct {
	Bundle     string   `arg:"" help:"Path to a txtar bundle." type:"existingfile"`
	Addr       string   `help:"Listen address." default:":8421"`
	CORSOrigin []string `help:"Origins allowed to query the API from a browser." name:"cors-origin" default:"*"`
}

func (c *ServeCmd) Run() error {
	logger := cliLogger(slog.LevelInfo)
	p, err := loader.LoadBundleFile(c.Bundle, loader.Options{Logger: logger})
	if err != nil {
		return err
	}
	svc := explorer.New(p, logger)
	handler := explorer.CORS(explorer.CORSConfig{AllowOrigins: c.CORSOrigin})(svc.Handler())
	logger.Info("explorer listening", slog.String("addr", c.Addr))
	return http.ListenAndServe(c.Addr, handler)
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func cliLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// useColor resolves the --color mode. An explicit "always" overrides the
// library's own TTY detection so piped output stays colored.
func useColor(mode string, w *os.File) bool {
	switch mode {
	case "always":
		color.NoColor = false
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(w.Fd())
	}
}

func plainSprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("tarnir"),
		kong.Description("Inspect, check, and serve Tarn IR bundles."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
