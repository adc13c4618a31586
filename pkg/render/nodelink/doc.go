// Package nodelink renders bounded hyponym trees as node-link diagrams.
//
// # Overview
//
// The tree produced by extraction is drawn with Graphviz. The default
// layout is radial (twopi) with the root at the centre, so the most
// general sense sits in the middle and hyponyms fan outward. Senses with
// hyponyms in the full graph are filled; leaves are outlined.
//
// # Usage
//
//	dot := nodelink.ToDOT(res.Tree, nodelink.Options{Kind: snap.Kind})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # DOT Format
//
// Every tree node gets its own DOT vertex ("n0", "n1", ...), since a sense
// may occur several times in the tree. The synset key is kept in the
// vertex id attribute of the SVG output, which lets the browser map a
// click back to a key for drill-down.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
