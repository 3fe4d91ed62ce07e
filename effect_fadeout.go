// effect_fadeout.go - Per-frame fade towards a target colour

package main

// Fadeout steps every pixel a fixed amount towards a target colour each
// frame. Run inside a list whose internal buffer persists across frames it
// produces the classic phosphor-decay trail. Parameters:
//
//	color  color 0x000000  (fade target)
//	speed  int   8         (per-channel step, 1-255)
type Fadeout struct {
	params *Params
}

func NewFadeout(params *Params) *Fadeout {
	if params == nil {
		params = NewParams()
	}
	return &Fadeout{params: params}
}

func (e *Fadeout) Render(ctx *RenderContext, audio *AudioFrame, beat BeatSignal, fbIn, fbOut []uint32, w, h int) RenderResult {
	n := w * h
	if n <= 0 || len(fbIn) < n {
		return 0
	}
	speed := uint32(e.params.Int("speed", 8))
	if speed < 1 {
		speed = 1
	}
	if speed > 255 {
		speed = 255
	}
	target := e.params.Color("color", 0x000000)

	for i := 0; i < n; i++ {
		p := fbIn[i]
		var out uint32
		for sh := 0; sh < 32; sh += 8 {
			c := (p >> sh) & 0xFF
			t := (target >> sh) & 0xFF
			switch {
			case c > t+speed:
				c -= speed
			case c+speed < t:
				c += speed
			default:
				c = t
			}
			out |= c << sh
		}
		fbIn[i] = out
	}
	return 0
}
