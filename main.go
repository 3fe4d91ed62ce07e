// main.go - Main entry point for the Pulse Engine demo driver

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/PulseEngine
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

func boilerPlate() {
	fmt.Println("\nPulse Engine - audio reactive visual effects compositor")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/PulseEngine")
	fmt.Println("License: GPLv3 or later")
}

// synthesizeFrame writes a deterministic test signal into af: a kick pulse
// on a 30-frame grid, a couple of harmonics and a little noise. Stands in
// for real capture, which is out of scope here.
func synthesizeFrame(frameNum int, rng *rand.Rand, af *AudioFrame) {
	const sampleRate = 44100.0
	base := float64(frameNum) * AUDIO_SAMPLES
	kick := frameNum % 30
	env := 0.0
	if kick < 4 {
		env = 1 - float64(kick)/4
	}
	for i := 0; i < AUDIO_SAMPLES; i++ {
		t := (base + float64(i)) / sampleRate
		s := env*0.9*math.Sin(2*math.Pi*55*t) +
			0.18*math.Sin(2*math.Pi*440*t) +
			0.08*math.Sin(2*math.Pi*880*t) +
			0.02*(rng.Float64()*2-1)
		if s > 1 {
			s = 1
		}
		if s < -1 {
			s = -1
		}
		af.Waveform[0][i] = s
		af.Waveform[1][i] = s * 0.8
	}
}

func writeFramePNG(path string, fb []uint32, w, h int) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := fb[y*w+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(p >> 16),
				G: uint8(p >> 8),
				B: uint8(p),
				A: 0xFF,
			})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("write frame: encode: %w", err)
	}
	return nil
}

// defaultTree is the built-in preset used when none is given: a persistent
// trail layer with a scope on top of spectrum bars.
func defaultTree() *EffectList {
	rootParams := NewParams()
	rootParams.SetInt("blendin", int(BlendIgnore))
	rootParams.SetInt("blendout", int(BlendReplace))
	root := NewEffectList(rootParams)

	fade := NewParams()
	fade.SetInt("speed", 12)
	root.AddChild(NewFadeout(fade))

	bars := NewParams()
	bars.SetInt("bands", 48)
	root.AddChild(NewSpectrumBars(bars))

	scope := NewParams()
	scope.SetInt("channel", 2)
	scope.SetInt("color", 0x00FFFFFF)
	root.AddChild(NewOscilloscope(scope))

	return root
}

func main() {
	presetPath := flag.String("preset", "", "TOML preset file (built-in chain when empty)")
	frames := flag.Int("frames", 300, "number of frames to render")
	width := flag.Int("width", 640, "frame width")
	height := flag.Int("height", 360, "frame height")
	outDir := flag.String("outdir", "", "write one PNG per frame into this directory")
	preview := flag.Bool("preview", false, "render frames into the terminal")
	quiet := flag.Bool("quiet", false, "suppress the banner")
	flag.Parse()

	if !*quiet {
		boilerPlate()
	}

	w, h := *width, *height
	var root *EffectList
	if *presetPath != "" {
		var pw, ph int
		var err error
		root, pw, ph, err = LoadPreset(*presetPath)
		if err != nil {
			fmt.Printf("Failed to load preset: %v\n", err)
			os.Exit(1)
		}
		if pw > 0 && ph > 0 {
			w, h = pw, ph
		}
	} else {
		ClearGlobalBuffers()
		root = defaultTree()
	}
	defer root.Close()

	analyzer, err := NewAudioAnalyzer()
	if err != nil {
		fmt.Printf("Failed to initialize analyzer: %v\n", err)
		os.Exit(1)
	}
	detector := NewBeatDetector()

	var tp *TerminalPreview
	if *preview {
		tp, err = NewTerminalPreview()
		if err != nil {
			fmt.Printf("Preview unavailable: %v\n", err)
			os.Exit(1)
		}
		defer tp.Close()
	}
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			fmt.Printf("Failed to create output directory: %v\n", err)
			os.Exit(1)
		}
	}

	ctx := NewRenderContext()
	fb := make([]uint32, w*h)
	scratch := make([]uint32, w*h)
	audio := &AudioFrame{}
	rng := rand.New(rand.NewSource(1))
	beats := 0

	for i := 0; i < *frames; i++ {
		synthesizeFrame(i, rng, audio)
		analyzer.Analyze(audio)
		isBeat := detector.Detect(audio)
		if isBeat {
			beats++
		}

		root.Render(ctx, audio, BeatSignal{On: isBeat}, fb, scratch, w, h)

		if *outDir != "" {
			path := filepath.Join(*outDir, fmt.Sprintf("frame_%04d.png", i))
			if err := writeFramePNG(path, fb, w, h); err != nil {
				fmt.Printf("Frame %d: %v\n", i, err)
				os.Exit(1)
			}
		}
		if tp != nil {
			tp.Render(fb, w, h)
			time.Sleep(time.Second / 60)
		}
	}

	if !*quiet {
		fmt.Printf("Rendered %d frames at %dx%d, %d beats detected\n", *frames, w, h, beats)
	}
}
