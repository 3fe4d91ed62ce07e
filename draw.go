// draw.go - Line drawing helpers honoring the context blend mode

package main

// PlotPixel writes one pixel through the context's line blend mode. Drawing
// effects must come through here rather than writing the frame directly, so
// a parent compositor can scope the blend mode around them.
func PlotPixel(ctx *RenderContext, fb []uint32, w, h, x, y int, color uint32) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	i := y*w + x
	fb[i] = BlendPixel(ctx.LineBlendMode, fb[i], color, ctx.LineBlendAlpha)
}

// DrawLine draws a straight line between two points with PlotPixel.
// Standard integer Bresenham.
func DrawLine(ctx *RenderContext, fb []uint32, w, h, x0, y0, x1, y1 int, color uint32) {
	drawLine(ctx, fb, w, h, x0, y0, x1, y1, color, false)
}

// drawLineSkipStart draws a line without its first pixel. Polyline drawing
// uses it so shared segment endpoints blend once, not twice.
func drawLineSkipStart(ctx *RenderContext, fb []uint32, w, h, x0, y0, x1, y1 int, color uint32) {
	drawLine(ctx, fb, w, h, x0, y0, x1, y1, color, true)
}

func drawLine(ctx *RenderContext, fb []uint32, w, h, x0, y0, x1, y1 int, color uint32, skipStart bool) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		if !skipStart {
			PlotPixel(ctx, fb, w, h, x0, y0, color)
		}
		skipStart = false
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}
