package flow

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/roomplan/pkg/plan"
	"github.com/matzehuels/roomplan/pkg/render"
)

// Options configures circulation diagram rendering.
type Options struct {
	// Detailed includes walking distance and catalog type in node labels.
	// When false, only the item label is shown.
	Detailed bool
}

// ToDOT converts a solved layout to Graphviz DOT format for circulation
// visualization: a diamond entrance node fanning out to every workstation
// and shared piece, ordered by distance from the door.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Chairs and dimension markers carry no circulation of their own and are
// folded into their workstation.
func ToDOT(blocks plan.Blocks, res *plan.Result, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph circulation {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	entrance := "entrance"
	fmt.Fprintf(&buf, "  %q [label=\"Door (%s)\", shape=diamond, fillcolor=lightgrey];\n",
		entrance, blocks.DoorSide)

	if res != nil {
		for _, it := range res.Items {
			switch it.Kind {
			case plan.KindChair, plan.KindMarker:
				continue
			}
			label := fmtLabel(it, blocks, opts.Detailed)
			attrs := fmtAttrs(it, label)
			fmt.Fprintf(&buf, "  %q [%s];\n", it.Label, strings.Join(attrs, ", "))
		}

		buf.WriteString("\n")
		for _, it := range res.Items {
			switch it.Kind {
			case plan.KindChair, plan.KindMarker:
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", entrance, it.Label)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(it plan.Item, blocks plan.Blocks, detailed bool) string {
	if !detailed {
		return it.Label
	}

	parts := []string{fmt.Sprintf("walk: %.1fm", walkDist(it, blocks)/1000)}
	if it.Type != "" {
		parts = append(parts, "type: "+it.Type)
	}
	return it.Label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(it plan.Item, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch it.Kind {
	case plan.KindStorage, plan.KindEquipment:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	case plan.KindMeeting:
		attrs = append(attrs, "fillcolor=lightyellow")
	}
	return attrs
}

// walkDist is the straight-line distance in millimeters from the door tip
// to the item's center.
func walkDist(it plan.Item, blocks plan.Blocks) float64 {
	cx := float64(it.Rect.X) + float64(it.Rect.W)/2
	cy := float64(it.Rect.Y) + float64(it.Rect.D)/2
	return math.Hypot(cx-blocks.DoorTip.X, cy-blocks.DoorTip.Y)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
