// Package pipeline ties the lexicon, the hypernym graph and the renderers
// together for the CLI, the TUI and the HTTP server.
//
// By centralizing this logic, every entry point validates input, logs,
// reports observability hooks and maps errors to codes the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: read every hypernym edge from the lexicon, build the DAG,
//     annotate subtree sizes and publish an immutable snapshot
//  2. Explore: extract a bounded subtree below a root from the current
//     snapshot and resolve display names
//  3. Render: write the tree as JSON, DOT, SVG, PNG or PDF
//
// Build runs once per process (and again on an explicit rebuild); Explore
// and Render run per request and may run concurrently with each other and
// with a rebuild.
//
// # Usage
//
//	runner := pipeline.NewRunner(lex, lexicon.Noun, logger)
//	if _, err := runner.Build(ctx); err != nil {
//	    return err
//	}
//	view, err := runner.Explore(ctx, pipeline.Options{Root: "animal.n.01"})
//	if err != nil {
//	    return err
//	}
//	svg, err := runner.Render(ctx, view, pipeline.RenderOptions{Format: pipeline.FormatSVG})
package pipeline

import (
	"strings"

	apperrors "github.com/matzehuels/synsetree/pkg/errors"
	"github.com/matzehuels/synsetree/pkg/lexicon"
	"github.com/matzehuels/synsetree/pkg/render/nodelink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and TUI
// =============================================================================

const (
	// DefaultLimit is the default number of distinct senses extracted.
	DefaultLimit = 200

	// MinLimit is the smallest accepted node limit.
	MinLimit = 5

	// DefaultLanguage is the default display language.
	DefaultLanguage = lexicon.DefaultLanguage

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// ContentTypes maps output formats to HTTP content types.
var ContentTypes = map[string]string{
	FormatJSON: "application/json",
	FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, dot, svg, png, pdf)", format)
	}
	return nil
}

// ValidateLayout checks that a node-link layout is valid. Empty selects
// the default.
func ValidateLayout(layout string) error {
	switch layout {
	case "", nodelink.LayoutRadial, nodelink.LayoutLayers:
		return nil
	}
	return apperrors.New(apperrors.ErrCodeInvalidInput,
		"invalid layout: %q (must be one of: twopi, dot)", layout)
}

// =============================================================================
// Options - Exploration and Rendering Configuration
// =============================================================================

// Options configures one exploration. It supports JSON for API requests.
type Options struct {
	Root     string `json:"root"`
	Limit    int    `json:"limit,omitempty"`
	Language string `json:"language,omitempty"`

	// Progress receives the extractor's progress. Not serialized.
	Progress func(admitted, expected int) `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	o.Root = strings.TrimSpace(o.Root)
	if o.Root == "" {
		return apperrors.New(apperrors.ErrCodeEmptySelection, "no sense selected")
	}
	if err := apperrors.ValidateSenseKey(o.Root); err != nil {
		return err
	}
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	if err := apperrors.ValidateLimit(o.Limit, MinLimit); err != nil {
		return err
	}
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	return apperrors.ValidateLanguage(o.Language)
}

// RenderOptions configures rendering of an explored view.
type RenderOptions struct {
	Format   string  `json:"format"`
	Layout   string  `json:"layout,omitempty"`   // twopi (default) or dot
	Detailed bool    `json:"detailed,omitempty"` // add ELEMENT/ITEM to labels
	Scale    float64 `json:"scale,omitempty"`    // PNG only
}

// ValidateAndSetDefaults checks the format and layout and applies defaults.
func (o *RenderOptions) ValidateAndSetDefaults() error {
	if o.Format == "" {
		o.Format = FormatSVG
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	return ValidateLayout(o.Layout)
}
