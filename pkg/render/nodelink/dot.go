package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/synsetree/pkg/classify"
	"github.com/matzehuels/synsetree/pkg/render"
	"github.com/matzehuels/synsetree/pkg/tree"
)

// Layout engines accepted in [Options].
const (
	LayoutRadial = "twopi"
	LayoutLayers = "dot"
)

// Options configures node-link diagram rendering. The zero value draws a
// radial diagram with every node outlined.
type Options struct {
	// Layout is the Graphviz engine: [LayoutRadial] (default) or [LayoutLayers].
	Layout string

	// Kind classifies a sense. When set, internal senses are filled.
	Kind func(key string) classify.Kind

	// Detailed appends the classification label to node labels.
	Detailed bool
}

func (o Options) layout() string {
	if o.Layout == LayoutLayers {
		return LayoutLayers
	}
	return LayoutRadial
}

// ToDOT converts a tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(root *tree.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", opts.layout())
	if opts.layout() == LayoutRadial {
		buf.WriteString("  root=n0;\n")
		buf.WriteString("  overlap=false;\n")
		buf.WriteString("  ranksep=1.2;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
		buf.WriteString("  ranksep=0.5;\n")
		buf.WriteString("  nodesep=0.3;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.05\"];\n")
	buf.WriteString("  edge [arrowsize=0.6, color=\"#888888\"];\n")
	buf.WriteString("\n")

	if root == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	type item struct {
		node   *tree.Node
		parent int
	}
	var edges []string
	next := 0
	stack := []item{{root, -1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id := next
		next++
		fmt.Fprintf(&buf, "  n%d [%s];\n", id, strings.Join(fmtAttrs(it.node, id == 0, opts), ", "))
		if it.parent >= 0 {
			edges = append(edges, fmt.Sprintf("  n%d -> n%d;\n", it.parent, id))
		}
		for i := len(it.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{it.node.Children[i], id})
		}
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *tree.Node, kind classify.Kind, opts Options) string {
	label := n.Name
	if label == "" {
		label = n.SynsetKey
	}
	if opts.Detailed && opts.Kind != nil {
		label += "\n" + kind.Label()
	}
	return label
}

func fmtAttrs(n *tree.Node, isRoot bool, opts Options) []string {
	kind := classify.Terminal
	if opts.Kind != nil {
		kind = opts.Kind(n.SynsetKey)
	}
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(n, kind, opts)),
		fmt.Sprintf("id=%q", n.SynsetKey),
		fmt.Sprintf("tooltip=%q", n.SynsetKey),
	}
	switch {
	case isRoot:
		attrs = append(attrs, "fillcolor=\"#f4d03f\"", "penwidth=2")
	case opts.Kind != nil && kind == classify.Internal:
		attrs = append(attrs, "fillcolor=\"#d6eaf8\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a
// viewBox-only one so the diagram scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
