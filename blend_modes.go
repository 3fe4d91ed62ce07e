// blend_modes.go - Pixel blend algebra for Pulse Engine

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/PulseEngine
License: GPLv3 or later
*/

package main

// BlendMode selects how a source frame is combined into a destination frame.
// The numeric values are stable: presets and the parameter store refer to
// them by index.
type BlendMode int

const (
	BlendIgnore BlendMode = iota
	BlendReplace
	BlendAvg5050
	BlendMaximum
	BlendAdditive
	BlendSubtractive1 // dst - src
	BlendSubtractive2 // src - dst
	BlendEveryOtherLine
	BlendEveryOtherPixel
	BlendXOR
	BlendAdjustable // explicit 0-255 alpha
	BlendMultiply
	BlendBufferMask // per-pixel alpha from a global buffer slot
	BlendMinimum

	BLEND_MODE_COUNT
)

func (m BlendMode) String() string {
	names := [...]string{
		"ignore", "replace", "5050", "maximum", "additive",
		"subtractive1", "subtractive2", "everyotherline",
		"everyotherpixel", "xor", "adjustable", "multiply",
		"buffer", "minimum",
	}
	if m < 0 || int(m) >= len(names) {
		return "unknown"
	}
	return names[m]
}

// Valid reports whether m is one of the defined blend modes.
func (m BlendMode) Valid() bool {
	return m >= BlendIgnore && m < BLEND_MODE_COUNT
}

// Channelwise saturating add across all four packed bytes.
func blendAdditive(dst, src uint32) uint32 {
	var out uint32
	for sh := 0; sh < 32; sh += 8 {
		c := ((dst >> sh) & 0xFF) + ((src >> sh) & 0xFF)
		if c > 0xFF {
			c = 0xFF
		}
		out |= c << sh
	}
	return out
}

// Halving average; loses the low bit of each channel, same as the classic
// packed trick.
func blendAvg5050(dst, src uint32) uint32 {
	return ((dst >> 1) & 0x7F7F7F7F) + ((src >> 1) & 0x7F7F7F7F)
}

func blendMaximum(dst, src uint32) uint32 {
	var out uint32
	for sh := 0; sh < 32; sh += 8 {
		d := (dst >> sh) & 0xFF
		s := (src >> sh) & 0xFF
		if s > d {
			d = s
		}
		out |= d << sh
	}
	return out
}

func blendMinimum(dst, src uint32) uint32 {
	var out uint32
	for sh := 0; sh < 32; sh += 8 {
		d := (dst >> sh) & 0xFF
		s := (src >> sh) & 0xFF
		if s < d {
			d = s
		}
		out |= d << sh
	}
	return out
}

// Channelwise saturating subtract, a - b.
func blendSubtract(a, b uint32) uint32 {
	var out uint32
	for sh := 0; sh < 32; sh += 8 {
		av := (a >> sh) & 0xFF
		bv := (b >> sh) & 0xFF
		if bv > av {
			av = bv
		}
		out |= (av - bv) << sh
	}
	return out
}

func blendMultiply(dst, src uint32) uint32 {
	var out uint32
	for sh := 0; sh < 32; sh += 8 {
		d := (dst >> sh) & 0xFF
		s := (src >> sh) & 0xFF
		out |= ((d * s) >> 8) << sh
	}
	return out
}

// blendAdjust mixes src over dst with alpha t in 0-255. Callers on the
// compositing stage path special-case t >= 255 to a straight copy before
// ever reaching here; the division keeps t == 255 bit-exact anyway.
func blendAdjust(dst, src uint32, t uint32) uint32 {
	if t >= 255 {
		return src
	}
	var out uint32
	for sh := 0; sh < 32; sh += 8 {
		d := (dst >> sh) & 0xFF
		s := (src >> sh) & 0xFF
		out |= ((s*t + d*(255-t)) / 255) << sh
	}
	return out
}

// maxRGB extracts the brightest colour channel of a packed pixel, ignoring
// the alpha byte.
func maxRGB(p uint32) uint32 {
	r := (p >> 16) & 0xFF
	g := (p >> 8) & 0xFF
	b := p & 0xFF
	m := r
	if g > m {
		m = g
	}
	if b > m {
		m = b
	}
	return m
}

// BlendPixel combines one src pixel into one dst pixel. The striping and
// buffer-driven modes operate on whole frames and are resolved by
// BlendStage; at pixel granularity they fall back to a copy.
func BlendPixel(mode BlendMode, dst, src uint32, alpha int) uint32 {
	switch mode {
	case BlendIgnore:
		return dst
	case BlendReplace:
		return src
	case BlendAvg5050:
		return blendAvg5050(dst, src)
	case BlendMaximum:
		return blendMaximum(dst, src)
	case BlendAdditive:
		return blendAdditive(dst, src)
	case BlendSubtractive1:
		return blendSubtract(dst, src)
	case BlendSubtractive2:
		return blendSubtract(src, dst)
	case BlendXOR:
		return dst ^ src
	case BlendAdjustable:
		return blendAdjust(dst, src, clampAlpha(alpha))
	case BlendMultiply:
		return blendMultiply(dst, src)
	case BlendMinimum:
		return blendMinimum(dst, src)
	}
	return src
}

func clampAlpha(alpha int) uint32 {
	if alpha < 0 {
		return 0
	}
	if alpha > 255 {
		return 255
	}
	return uint32(alpha)
}

// BlendStage applies one compositing stage, combining the whole src frame
// into dst. alpha feeds BlendAdjustable, slot and invert feed
// BlendBufferMask. Both buffers must be at least w*h pixels.
//
// EveryOtherLine and EveryOtherPixel do not blend: they copy whole
// alternating rows (respectively a checkerboard of pixels) unconditionally,
// ignoring alpha. That is deliberate, long-standing behaviour.
func BlendStage(mode BlendMode, dst, src []uint32, w, h int, alpha int, slot int, invert bool) {
	n := w * h
	if n <= 0 || len(dst) < n || len(src) < n {
		return
	}

	switch mode {
	case BlendIgnore:
		return

	case BlendReplace:
		copy(dst[:n], src[:n])
		return

	case BlendEveryOtherLine:
		for y := 0; y < h; y += 2 {
			row := y * w
			copy(dst[row:row+w], src[row:row+w])
		}
		return

	case BlendEveryOtherPixel:
		for y := 0; y < h; y++ {
			row := y * w
			for x := y & 1; x < w; x += 2 {
				dst[row+x] = src[row+x]
			}
		}
		return

	case BlendAdjustable:
		// Full alpha is exactly Replace; take the copy path.
		if alpha >= 255 {
			copy(dst[:n], src[:n])
			return
		}
		t := clampAlpha(alpha)
		for i := 0; i < n; i++ {
			dst[i] = blendAdjust(dst[i], src[i], t)
		}
		return

	case BlendBufferMask:
		mask := GlobalBuffer(w, h, slot, false)
		if mask == nil {
			return // unallocated slot: stage is a no-op
		}
		for i := 0; i < n; i++ {
			t := maxRGB(mask[i])
			if invert {
				t = 255 - t
			}
			dst[i] = blendAdjust(dst[i], src[i], t)
		}
		return
	}

	for i := 0; i < n; i++ {
		dst[i] = BlendPixel(mode, dst[i], src[i], alpha)
	}
}
