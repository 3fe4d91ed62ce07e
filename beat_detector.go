// beat_detector.go - Energy based beat detection for Pulse Engine

package main

// BeatDetector derives the per-frame beat boolean the render tree consumes.
// It compares the instant energy of the incoming waveform against a rolling
// local average: a frame whose energy spikes well above the recent norm is a
// beat. A short refractory interval stops one kick drum from reading as
// several beats.
type BeatDetector struct {
	history   [43]float64 // ~0.7s of frames at 60Hz
	histLen   int
	histPos   int
	cooldown  int
	Threshold float64 // spike factor over the local average
}

const beatRefractoryFrames = 4

func NewBeatDetector() *BeatDetector {
	return &BeatDetector{Threshold: 1.6}
}

// Detect consumes one frame of audio and reports whether it starts a beat.
func (d *BeatDetector) Detect(frame *AudioFrame) bool {
	energy := 0.0
	for ch := 0; ch < AUDIO_CHANNELS; ch++ {
		for i := 0; i < AUDIO_SAMPLES; i++ {
			s := frame.Waveform[ch][i]
			energy += s * s
		}
	}
	energy /= AUDIO_CHANNELS * AUDIO_SAMPLES

	avg := 0.0
	for i := 0; i < d.histLen; i++ {
		avg += d.history[i]
	}
	if d.histLen > 0 {
		avg /= float64(d.histLen)
	}

	d.history[d.histPos] = energy
	d.histPos = (d.histPos + 1) % len(d.history)
	if d.histLen < len(d.history) {
		d.histLen++
	}

	if d.cooldown > 0 {
		d.cooldown--
		return false
	}
	// Needs a meaningful floor so silence never triggers.
	if energy < 1e-4 || d.histLen < 8 {
		return false
	}
	if energy > avg*d.Threshold {
		d.cooldown = beatRefractoryFrames
		return true
	}
	return false
}
