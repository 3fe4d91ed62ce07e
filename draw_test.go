// draw_test.go - Line drawing test suite

package main

import "testing"

func TestPlotPixelClipsToFrame(t *testing.T) {
	fb := make([]uint32, 4*4)
	ctx := NewRenderContext()
	// None of these may panic or write.
	PlotPixel(ctx, fb, 4, 4, -1, 0, 0x00FFFFFF)
	PlotPixel(ctx, fb, 4, 4, 0, -1, 0x00FFFFFF)
	PlotPixel(ctx, fb, 4, 4, 4, 0, 0x00FFFFFF)
	PlotPixel(ctx, fb, 4, 4, 0, 4, 0x00FFFFFF)
	for i, px := range fb {
		if px != 0 {
			t.Fatalf("out-of-frame plot wrote pixel %d", i)
		}
	}
}

func TestDrawLineEndpointsAndBlend(t *testing.T) {
	const w, h = 8, 8
	fb := make([]uint32, w*h)
	for i := range fb {
		fb[i] = 0x00000080
	}
	ctx := NewRenderContext()
	ctx.LineBlendMode = BlendAdditive

	DrawLine(ctx, fb, w, h, 1, 1, 6, 6, 0x00000040)

	// Additive blend: 0x80 + 0x40 on the blue channel along the diagonal.
	for _, p := range [][2]int{{1, 1}, {3, 3}, {6, 6}} {
		if got := fb[p[1]*w+p[0]]; got != 0x000000C0 {
			t.Errorf("diagonal pixel (%d,%d) = %08x, want 000000C0", p[0], p[1], got)
		}
	}
	if fb[0] != 0x00000080 {
		t.Errorf("untouched pixel changed: %08x", fb[0])
	}
}
