// Package render converts rendered diagrams between output formats.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders bounded hyponym trees as radial
// node-link diagrams using Graphviz.
//
// [nodelink]: github.com/matzehuels/synsetree/pkg/render/nodelink
package render
