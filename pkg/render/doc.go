// Package render provides the output renderers for k-d trees.
//
// # Overview
//
// This package contains the renderers that turn a [kdtree.Tree] into output
// documents. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Shared value formatting helpers
//   - Shape dumps (in [shape] subpackage)
//   - TikZ spatial diagrams (in [tikz] subpackage)
//   - Node-link topology diagrams (in [topo] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). They are used to rasterize
// the topology diagrams produced by [topo].
//
//	svg, err := topo.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Shape Dumps
//
// The [shape] subpackage prints the nested structure of a tree as indented
// text, one block per node, suitable for terminals and diffs.
//
// # TikZ Diagrams
//
// The [tikz] subpackage emits a standalone LaTeX/TikZ document plotting the
// spatial partition of a 2-D tree: split lines, stored points, and labels.
//
// # Topology Diagrams
//
// The [topo] subpackage renders the parent/child topology of a tree as a
// Graphviz node-link diagram, independent of the spatial geometry.
//
// [shape]: github.com/kdsketch/kdsketch/pkg/render/shape
// [tikz]: github.com/kdsketch/kdsketch/pkg/render/tikz
// [topo]: github.com/kdsketch/kdsketch/pkg/render/topo
// [kdtree.Tree]: github.com/kdsketch/kdsketch/pkg/kdtree
package render
