// Package solution generates Advent of Code day modules in a Cargo project.
//
// A run renders the solution skeleton for a day, creates the module file,
// inserts a routing line into the runner's dispatch match, and appends the
// module declaration to the crate's module list. The two supported layouts
// are described by Layout.
package solution

import (
	"embed"
	"fmt"

	"github.com/bwpge/daygen/internal/generator"
	"github.com/bwpge/daygen/internal/output"
	"github.com/bwpge/daygen/internal/project"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Options configures a day-module generation run.
type Options struct {
	Day    int    // Day number (1-25)
	Title  string // Optional documentation title
	Crate  string // Crate name for flat-layout routing lines
	Layout Layout // Target file layout
}

// templateData is what the solution template renders with.
type templateData struct {
	Day   int
	Title string
}

// Generator builds the operations for a day-module run.
type Generator struct {
	renderer *generator.Renderer
}

// NewGenerator creates a new solution generator.
func NewGenerator() *Generator {
	return &Generator{renderer: generator.NewRenderer()}
}

// Validate checks options before any rendering happens.
func (o Options) Validate() error {
	if o.Day < 1 || o.Day > 25 {
		return fmt.Errorf("day number must be between 1 and 25, got %d", o.Day)
	}
	if o.Layout == nil {
		return fmt.Errorf("no layout specified")
	}
	return nil
}

// Generate renders the solution template and returns the operations for the
// run: write the module file, patch the dispatch file, append the module
// declaration. Operations are returned in mutation order and not yet
// executed.
func (g *Generator) Generate(srcDir string, opts Options) ([]generator.Operation, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	crate := opts.Crate
	if crate == "" {
		crate = project.DefaultCrate
	}

	output.Verbose(fmt.Sprintf("Rendering solution template for day %d (%s layout)", opts.Day, opts.Layout.Name()))

	content, err := g.renderer.RenderFS(templates, "templates/solution.rs.tmpl", templateData{
		Day:   opts.Day,
		Title: opts.Title,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render solution: %w", err)
	}

	ops := []generator.Operation{
		&generator.WriteFileOp{
			Path:    opts.Layout.SolutionPath(srcDir, opts.Day),
			Content: content,
			Mode:    0644,
		},
		&generator.InsertLineOp{
			Path:     opts.Layout.DispatchPath(srcDir),
			Sentinel: DispatchSentinel,
			Before:   DispatchMarker,
			Line:     opts.Layout.RouteLine(crate, opts.Day),
		},
		&generator.AppendLineOp{
			Path: opts.Layout.ModuleListPath(srcDir),
			Line: opts.Layout.DeclLine(opts.Day),
		},
	}

	return ops, nil
}
