package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// Rendering defaults. Scale is output pixels per meter of room; the margin
// leaves space for the wall stroke and dimension text.
const (
	DefaultScale = 100
	marginMM     = 300
	gridStepMM   = 500
)

// SVGOption configures floor plan rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme  Theme
	scale  int
	grid   bool
	labels bool
	title  string
}

// WithTheme selects the color theme.
func WithTheme(t Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithScale sets the output scale in pixels per meter.
func WithScale(pxPerMeter int) SVGOption {
	return func(r *svgRenderer) {
		if pxPerMeter > 0 {
			r.scale = pxPerMeter
		}
	}
}

// WithoutGrid suppresses the background grid.
func WithoutGrid() SVGOption { return func(r *svgRenderer) { r.grid = false } }

// WithoutLabels suppresses the item labels.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.labels = false } }

// WithTitle draws a caption above the room.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// RenderSVG draws a layout as a floor plan: the room outline, an optional
// half-meter grid, the door with its swing arc, every placed item colored
// by kind, and the dimension markers emitted by the generators. A nil
// result renders the empty room.
func RenderSVG(room plan.Room, blocks plan.Blocks, res *plan.Result, opts ...SVGOption) []byte {
	r := svgRenderer{theme: DefaultTheme(), scale: DefaultScale, grid: true, labels: true}
	for _, opt := range opts {
		opt(&r)
	}

	w := r.px(room.W + 2*marginMM)
	h := r.px(room.D + 2*marginMM)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	fmt.Fprintf(&buf, `<rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", w, h, r.theme.Background)

	if r.grid {
		r.renderGrid(&buf, room)
	}
	r.renderRoom(&buf, room)
	r.renderDoor(&buf, room, blocks)

	if res != nil {
		for _, it := range res.Items {
			if it.Kind == plan.KindMarker {
				r.renderMarker(&buf, it)
				continue
			}
			r.renderItem(&buf, it)
		}
	}
	if r.title != "" {
		fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f" font-size="%.1f" font-family="sans-serif" fill="%s">%s</text>`+"\n",
			r.x(0), r.px(marginMM)*0.55, r.px(220), r.theme.Text, escape(r.title))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// px converts millimeters to output pixels.
func (r *svgRenderer) px(mm int) float64 {
	return float64(mm) * float64(r.scale) / 1000
}

// x and y convert room coordinates to canvas coordinates.
func (r *svgRenderer) x(mm int) float64 { return r.px(mm + marginMM) }
func (r *svgRenderer) y(mm int) float64 { return r.px(mm + marginMM) }

func (r *svgRenderer) renderGrid(buf *bytes.Buffer, room plan.Room) {
	stroke := r.px(8)
	for gx := gridStepMM; gx < room.W; gx += gridStepMM {
		fmt.Fprintf(buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.2f"/>`+"\n",
			r.x(gx), r.y(0), r.x(gx), r.y(room.D), r.theme.Grid, stroke)
	}
	for gy := gridStepMM; gy < room.D; gy += gridStepMM {
		fmt.Fprintf(buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.2f"/>`+"\n",
			r.x(0), r.y(gy), r.x(room.W), r.y(gy), r.theme.Grid, stroke)
	}
}

func (r *svgRenderer) renderRoom(buf *bytes.Buffer, room plan.Room) {
	fmt.Fprintf(buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n",
		r.x(0), r.y(0), r.px(room.W), r.px(room.D), r.theme.Wall, r.px(80))
}

// renderDoor draws the access buffer as a dashed outline and the leaf
// swing as a quarter arc hinged on the buffer's anchor corner.
func (r *svgRenderer) renderDoor(buf *bytes.Buffer, room plan.Room, blocks plan.Blocks) {
	if !blocks.DoorSide.Valid() {
		return
	}
	d := blocks.DoorRect
	fmt.Fprintf(buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="%.2f" stroke-dasharray="%.1f %.1f"/>`+"\n",
		r.x(d.X), r.y(d.Y), r.px(d.W), r.px(d.D), r.theme.Door, r.px(15), r.px(60), r.px(60))

	// Hinge at the buffer corner nearest the wall origin, leaf along the
	// wall, swinging into the room.
	var hx, hy, lx, ly, ax, ay int
	width := d.W
	if !blocks.DoorSide.Horizontal() {
		width = d.D
	}
	switch blocks.DoorSide {
	case plan.SideTop:
		hx, hy = d.X, 0
		lx, ly = d.X+width, 0
		ax, ay = d.X, width
	case plan.SideBottom:
		hx, hy = d.X, room.D
		lx, ly = d.X+width, room.D
		ax, ay = d.X, room.D-width
	case plan.SideLeft:
		hx, hy = 0, d.Y
		lx, ly = 0, d.Y+width
		ax, ay = width, d.Y
	default: // SideRight
		hx, hy = room.W, d.Y
		lx, ly = room.W, d.Y+width
		ax, ay = room.W-width, d.Y
	}
	fmt.Fprintf(buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		r.x(hx), r.y(hy), r.x(lx), r.y(ly), r.theme.Door, r.px(40))
	fmt.Fprintf(buf, `<path d="M %.1f %.1f A %.1f %.1f 0 0 1 %.1f %.1f" fill="none" stroke="%s" stroke-width="%.2f" stroke-dasharray="%.1f %.1f"/>`+"\n",
		r.x(lx), r.y(ly), r.px(width), r.px(width), r.x(ax), r.y(ay),
		r.theme.Door, r.px(15), r.px(40), r.px(40))
}

func (r *svgRenderer) renderItem(buf *bytes.Buffer, it plan.Item) {
	fill, ok := r.theme.Fill[it.Kind]
	if !ok {
		fill = r.theme.Background
	}
	stroke, ok := r.theme.Stroke[it.Kind]
	if !ok {
		stroke = r.theme.Wall
	}

	rx := 0.0
	if it.Kind == plan.KindChair {
		rx = r.px(it.Rect.W) / 4
	}
	fmt.Fprintf(buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" stroke="%s" stroke-width="%.2f"/>`+"\n",
		r.x(it.Rect.X), r.y(it.Rect.Y), r.px(it.Rect.W), r.px(it.Rect.D), rx, fill, stroke, r.px(15))

	if r.labels && it.Label != "" && it.Kind != plan.KindChair {
		c := it.Rect.Center()
		fmt.Fprintf(buf, `<text x="%.1f" y="%.1f" font-size="%.1f" font-family="sans-serif" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			r.px(int(c.X)+marginMM), r.px(int(c.Y)+marginMM), r.px(160), r.theme.Text, escape(it.Label))
	}
}

// renderMarker draws a dimension annotation as a measured line with end
// ticks and the distance text alongside.
func (r *svgRenderer) renderMarker(buf *bytes.Buffer, it plan.Item) {
	a := geometry.Point{X: float64(it.Rect.X), Y: float64(it.Rect.Y)}
	b := geometry.Point{X: float64(it.Rect.X2()), Y: float64(it.Rect.Y2())}
	fmt.Fprintf(buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		r.px(int(a.X)+marginMM), r.px(int(a.Y)+marginMM), r.px(int(b.X)+marginMM), r.px(int(b.Y)+marginMM),
		r.theme.Dim, r.px(10))

	tick := r.px(60)
	for _, p := range []geometry.Point{a, b} {
		fmt.Fprintf(buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.2f"/>`+"\n",
			r.px(int(p.X)+marginMM)-tick, r.px(int(p.Y)+marginMM), r.px(int(p.X)+marginMM)+tick, r.px(int(p.Y)+marginMM),
			r.theme.Dim, r.px(10))
	}

	if it.Label != "" {
		mx := (a.X + b.X) / 2
		my := (a.Y + b.Y) / 2
		fmt.Fprintf(buf, `<text x="%.1f" y="%.1f" font-size="%.1f" font-family="sans-serif" fill="%s" text-anchor="start" dominant-baseline="middle">%s</text>`+"\n",
			r.px(int(mx)+marginMM)+tick, r.px(int(my)+marginMM), r.px(140), r.theme.Dim, escape(it.Label))
	}
}

// escape replaces the characters SVG text cannot carry verbatim.
func escape(s string) string {
	var buf bytes.Buffer
	for _, c := range s {
		switch c {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(c)
		}
	}
	return buf.String()
}
