// audio_frame.go - Per-frame audio snapshot and spectrum analysis for Pulse Engine

package main

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

const (
	AUDIO_CHANNELS = 2
	AUDIO_SAMPLES  = 576 // waveform samples per channel per frame

	spectrumFFTSize = 512
	SPECTRUM_BINS   = spectrumFFTSize / 2
)

// AudioFrame is the audio snapshot handed to every effect each frame: the
// raw waveform in [-1, 1] and the magnitude spectrum the analyzer derived
// from it. Effects read it, never write it.
type AudioFrame struct {
	Waveform [AUDIO_CHANNELS][AUDIO_SAMPLES]float64
	Spectrum [AUDIO_CHANNELS][SPECTRUM_BINS]float64
}

// AudioAnalyzer turns waveforms into magnitude spectra. One FFT plan and its
// scratch buffers are reused across frames.
type AudioAnalyzer struct {
	plan   *algofft.Plan[complex128]
	input  []complex128
	output []complex128
	window []float64
}

func NewAudioAnalyzer() (*AudioAnalyzer, error) {
	plan, err := algofft.NewPlan64(spectrumFFTSize)
	if err != nil {
		return nil, fmt.Errorf("audio analyzer: fft plan: %w", err)
	}
	window := make([]float64, spectrumFFTSize)
	for i := range window {
		// Hann window
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(spectrumFFTSize)))
	}
	return &AudioAnalyzer{
		plan:   plan,
		input:  make([]complex128, spectrumFFTSize),
		output: make([]complex128, spectrumFFTSize),
		window: window,
	}, nil
}

// Analyze fills frame.Spectrum from frame.Waveform. The first
// spectrumFFTSize waveform samples of each channel are windowed and
// transformed; magnitudes are normalised so a full-scale sine lands near 1.
func (a *AudioAnalyzer) Analyze(frame *AudioFrame) {
	for ch := 0; ch < AUDIO_CHANNELS; ch++ {
		for i := 0; i < spectrumFFTSize; i++ {
			a.input[i] = complex(frame.Waveform[ch][i]*a.window[i], 0)
		}
		if err := a.plan.Forward(a.output, a.input); err != nil {
			for bin := 0; bin < SPECTRUM_BINS; bin++ {
				frame.Spectrum[ch][bin] = 0
			}
			continue
		}
		for bin := 0; bin < SPECTRUM_BINS; bin++ {
			mag := cmplx.Abs(a.output[bin]) * 4 / float64(spectrumFFTSize)
			if mag > 1 {
				mag = 1
			}
			frame.Spectrum[ch][bin] = mag
		}
	}
}
