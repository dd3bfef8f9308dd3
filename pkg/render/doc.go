// Package render turns solved layouts into deliverable artifacts.
//
// # Overview
//
// This package contains the rendering pipeline that transforms a solved
// room layout into visual and machine-readable outputs. It provides:
//
//   - Scaled SVG floor plans with walls, door swing, furniture, and
//     dimension markers ([RenderSVG])
//   - Generic format conversion (SVG to PDF/PNG)
//   - JSON layout payloads and CSV item schedules ([RenderJSON], [RenderCSV])
//   - Circulation diagrams (in [flow] subpackage)
//
// # Floor Plans
//
// [RenderSVG] draws the room at a fixed millimeter-to-pixel scale with a
// configurable theme. Options follow the functional pattern:
//
//	svg := render.RenderSVG(room, blocks, result,
//		render.WithTheme(render.BlueprintTheme()),
//		render.WithTitle("Floor 3, Room 12"))
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). [RenderPDF] and
// [RenderPNG] compose them with the floor renderer.
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Circulation Diagrams
//
// The [flow] subpackage renders the door-to-seat circulation as a directed
// graph using Graphviz. Seats appear as boxes reached from the entrance.
//
//	dot := flow.ToDOT(blocks, result, flow.Options{})
//	svg, err := flow.RenderSVG(ctx, dot)
//
// [flow]: github.com/matzehuels/roomplan/pkg/render/flow
package render
