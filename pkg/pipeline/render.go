package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/matzehuels/synsetree/pkg/observability"
	"github.com/matzehuels/synsetree/pkg/render/nodelink"
)

// Render writes the view's tree in the requested format.
//
// JSON is the tree contract ({name, synset_key, children}); DOT and the
// image formats are node-link diagrams with internal senses filled.
func (r *Runner) Render(ctx context.Context, v *View, opts RenderOptions) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()

	data, err := renderView(v, opts)

	hooks.OnRenderComplete(ctx, opts.Format, time.Since(start), err)
	if err != nil {
		return nil, stageErr("render "+opts.Format, err)
	}
	r.Logger.Debug("rendered",
		"format", opts.Format,
		"bytes", len(data),
		"duration", time.Since(start))
	return data, nil
}

func renderView(v *View, opts RenderOptions) ([]byte, error) {
	if opts.Format == FormatJSON {
		return json.MarshalIndent(v.Tree, "", "  ")
	}

	nlOpts := nodelink.Options{Layout: opts.Layout, Detailed: opts.Detailed}
	if v.snap != nil {
		nlOpts.Kind = v.snap.Kind
	}
	dot := nodelink.ToDOT(v.Tree, nlOpts)

	switch opts.Format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatPNG:
		return nodelink.RenderPNG(dot, opts.Scale)
	case FormatPDF:
		return nodelink.RenderPDF(dot)
	default:
		return nodelink.RenderSVG(dot)
	}
}
