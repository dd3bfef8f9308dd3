// Package flow renders solved layouts as circulation diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// the room entrance fans out to every workstation and shared piece. It's an
// alternative to the floor plan for reviewing reachability at a glance.
//
// # Usage
//
// Convert a result to DOT format, then render to SVG:
//
//	dot := flow.ToDOT(blocks, result, flow.Options{Detailed: false})
//	svg, err := flow.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := flow.RenderPDF(ctx, dot)
//	png, err := flow.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include the straight-line walking
//     distance from the door and the catalog type.
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package flow
