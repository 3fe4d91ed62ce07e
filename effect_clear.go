// effect_clear.go - Solid colour clear effect

package main

// ClearScreen fills the frame with a solid colour. Parameters:
//
//	color      color 0x000000
//	only_beat  bool  false  (fill only on frames with a beat)
type ClearScreen struct {
	params *Params
}

func NewClearScreen(params *Params) *ClearScreen {
	if params == nil {
		params = NewParams()
	}
	return &ClearScreen{params: params}
}

func (e *ClearScreen) Render(ctx *RenderContext, audio *AudioFrame, beat BeatSignal, fbIn, fbOut []uint32, w, h int) RenderResult {
	n := w * h
	if n <= 0 || len(fbIn) < n {
		return 0
	}
	if e.params.Bool("only_beat", false) && !beat.On {
		return 0
	}
	color := e.params.Color("color", 0x000000)
	for i := 0; i < n; i++ {
		fbIn[i] = color
	}
	return 0
}
