// effect_oscilloscope.go - Waveform oscilloscope effect

package main

// Oscilloscope draws the current waveform as a polyline across the frame.
// All drawing goes through the context line blend mode. Parameters:
//
//	color    color 0x00FFFFFF
//	channel  int   0  (0 = left, 1 = right, 2 = average of both)
//	gain     int   100 (percent)
type Oscilloscope struct {
	params *Params
}

func NewOscilloscope(params *Params) *Oscilloscope {
	if params == nil {
		params = NewParams()
	}
	return &Oscilloscope{params: params}
}

func (e *Oscilloscope) sample(audio *AudioFrame, i int) float64 {
	switch e.params.Int("channel", 0) {
	case 1:
		return audio.Waveform[1][i]
	case 2:
		return (audio.Waveform[0][i] + audio.Waveform[1][i]) / 2
	default:
		return audio.Waveform[0][i]
	}
}

func (e *Oscilloscope) Render(ctx *RenderContext, audio *AudioFrame, beat BeatSignal, fbIn, fbOut []uint32, w, h int) RenderResult {
	if w <= 0 || h <= 0 || len(fbIn) < w*h || audio == nil {
		return 0
	}
	color := e.params.Color("color", 0x00FFFFFF)
	gain := float64(e.params.Int("gain", 100)) / 100

	mid := h / 2
	prevX, prevY := 0, mid
	for x := 0; x < w; x++ {
		i := x * (AUDIO_SAMPLES - 1) / maxInt(w-1, 1)
		v := e.sample(audio, i) * gain
		if v > 1 {
			v = 1
		}
		if v < -1 {
			v = -1
		}
		y := mid + int(v*float64(h/2-1))
		if x == 0 {
			PlotPixel(ctx, fbIn, w, h, x, y, color)
		} else {
			// Skip the shared endpoint so blending modes touch each
			// pixel of the polyline exactly once.
			drawLineSkipStart(ctx, fbIn, w, h, prevX, prevY, x, y, color)
		}
		prevX, prevY = x, y
	}
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
