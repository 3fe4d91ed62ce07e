// audio_frame_test.go - Spectrum analyzer test suite

package main

import (
	"math"
	"testing"
)

func TestAnalyzeSinePeaksInCorrectBin(t *testing.T) {
	analyzer, err := NewAudioAnalyzer()
	if err != nil {
		t.Fatalf("NewAudioAnalyzer: %v", err)
	}

	const bin = 32
	frame := &AudioFrame{}
	for i := 0; i < AUDIO_SAMPLES; i++ {
		frame.Waveform[0][i] = math.Sin(2 * math.Pi * bin * float64(i) / float64(spectrumFFTSize))
	}
	analyzer.Analyze(frame)

	peak := frame.Spectrum[0][bin]
	if peak < 0.5 {
		t.Errorf("expected strong magnitude in bin %d, got %v", bin, peak)
	}
	for b := 0; b < SPECTRUM_BINS; b++ {
		if b >= bin-2 && b <= bin+2 {
			continue
		}
		if frame.Spectrum[0][b] > peak/4 {
			t.Errorf("bin %d unexpectedly large: %v (peak %v)", b, frame.Spectrum[0][b], peak)
		}
	}
}

func TestAnalyzeSilenceIsZero(t *testing.T) {
	analyzer, err := NewAudioAnalyzer()
	if err != nil {
		t.Fatalf("NewAudioAnalyzer: %v", err)
	}
	frame := &AudioFrame{}
	analyzer.Analyze(frame)
	for ch := 0; ch < AUDIO_CHANNELS; ch++ {
		for b := 0; b < SPECTRUM_BINS; b++ {
			if frame.Spectrum[ch][b] != 0 {
				t.Fatalf("channel %d bin %d: silence produced %v", ch, b, frame.Spectrum[ch][b])
			}
		}
	}
}
