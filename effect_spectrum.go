// effect_spectrum.go - Spectrum analyzer bars effect

package main

// SpectrumBars draws the analyzer's magnitude spectrum as vertical bars
// rising from the bottom edge, brighter on beat frames. Parameters:
//
//	color    color 0x0000FF40
//	channel  int   0  (0 = left, 1 = right, 2 = average)
//	bands    int   64
type SpectrumBars struct {
	params *Params
}

func NewSpectrumBars(params *Params) *SpectrumBars {
	if params == nil {
		params = NewParams()
	}
	return &SpectrumBars{params: params}
}

func (e *SpectrumBars) magnitude(audio *AudioFrame, bin int) float64 {
	switch e.params.Int("channel", 0) {
	case 1:
		return audio.Spectrum[1][bin]
	case 2:
		return (audio.Spectrum[0][bin] + audio.Spectrum[1][bin]) / 2
	default:
		return audio.Spectrum[0][bin]
	}
}

func (e *SpectrumBars) Render(ctx *RenderContext, audio *AudioFrame, beat BeatSignal, fbIn, fbOut []uint32, w, h int) RenderResult {
	if w <= 0 || h <= 0 || len(fbIn) < w*h || audio == nil {
		return 0
	}
	bands := e.params.Int("bands", 64)
	if bands < 1 {
		bands = 1
	}
	if bands > SPECTRUM_BINS {
		bands = SPECTRUM_BINS
	}
	color := e.params.Color("color", 0x0000FF40)
	if beat.On {
		color = blendAdditive(color, 0x00404040)
	}

	barW := w / bands
	if barW < 1 {
		barW = 1
	}
	binsPerBand := SPECTRUM_BINS / bands

	for band := 0; band < bands; band++ {
		peak := 0.0
		for bin := band * binsPerBand; bin < (band+1)*binsPerBand; bin++ {
			if m := e.magnitude(audio, bin); m > peak {
				peak = m
			}
		}
		barH := int(peak * float64(h-1))
		x0 := band * barW
		for x := x0; x < x0+barW && x < w; x++ {
			DrawLine(ctx, fbIn, w, h, x, h-1, x, h-1-barH, color)
		}
	}
	return 0
}
