package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/roomplan/pkg/render"
	"github.com/matzehuels/roomplan/pkg/render/flow"
	"github.com/matzehuels/roomplan/pkg/solve"
)

// Render generates output artifacts in the requested formats.
//
// The SVG floor plan is rendered once and reused for PDF and PNG
// conversion, so mixed-format requests pay the drawing cost once.
func Render(ctx context.Context, sol *solve.Solution, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)

	var svg []byte
	floorSVG := func() []byte {
		if svg == nil {
			svg = render.RenderSVG(sol.Request.Room, sol.Blocks, &sol.Best, svgOptions(opts)...)
		}
		return svg
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = floorSVG()
		case FormatPNG:
			data, err = render.ToPNG(floorSVG(), DefaultPNGScale)
		case FormatPDF:
			data, err = render.ToPDF(floorSVG())
		case FormatJSON:
			data, err = render.RenderJSON(sol.Request.Room, sol.Blocks, &sol.Best)
		case FormatCSV:
			data, err = render.RenderCSV(&sol.Best)
		case FormatDOT:
			data = []byte(flow.ToDOT(sol.Blocks, &sol.Best, flow.Options{Detailed: true}))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return artifacts, nil
}

// svgOptions translates pipeline options into floor renderer options.
func svgOptions(opts Options) []render.SVGOption {
	var out []render.SVGOption
	if th, ok := render.ThemeByName(opts.Theme); ok {
		out = append(out, render.WithTheme(th))
	}
	if opts.Scale > 0 {
		out = append(out, render.WithScale(opts.Scale))
	}
	if opts.Title != "" {
		out = append(out, render.WithTitle(opts.Title))
	}
	if opts.NoGrid {
		out = append(out, render.WithoutGrid())
	}
	return out
}
