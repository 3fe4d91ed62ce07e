// preset_test.go - Preset loading test suite

package main

import "testing"

const testPreset = `
width = 64
height = 32

[root]
[root.params]
clear_each_frame = true

[[root.children]]
type = "fadeout"
[root.children.params]
speed = 4
color = 0x000020

[[root.children]]
type = "does-not-exist"

[[root.children]]
type = "list"
[root.children.params]
blendin = 0
blendout = 4

[[root.children.children]]
type = "oscilloscope"
[root.children.children.params]
channel = 2
`

func TestParsePresetBuildsTree(t *testing.T) {
	root, w, h, err := ParsePreset(testPreset)
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}
	defer root.Close()

	if w != 64 || h != 32 {
		t.Errorf("dimensions %dx%d, want 64x32", w, h)
	}
	// Unknown effect type is skipped, not fatal.
	if root.NumChildren() != 2 {
		t.Fatalf("root has %d children, want 2", root.NumChildren())
	}
	if !root.Params().Bool("clear_each_frame", false) {
		t.Error("root clear_each_frame not applied")
	}

	fade, ok := root.children[0].(*Fadeout)
	if !ok {
		t.Fatalf("first child is %T, want *Fadeout", root.children[0])
	}
	if got := fade.params.Int("speed", 0); got != 4 {
		t.Errorf("fadeout speed = %d, want 4", got)
	}
	if got := fade.params.Color("color", 0); got != 0x000020 {
		t.Errorf("fadeout color = %06x, want 000020", got)
	}

	sub, ok := root.children[1].(*EffectList)
	if !ok {
		t.Fatalf("second child is %T, want *EffectList", root.children[1])
	}
	if sub.NumChildren() != 1 {
		t.Fatalf("nested list has %d children, want 1", sub.NumChildren())
	}
	if got := sub.Params().Int("blendout", -1); got != int(BlendAdditive) {
		t.Errorf("nested blendout = %d, want %d", got, int(BlendAdditive))
	}
	if _, ok := sub.children[0].(*Oscilloscope); !ok {
		t.Errorf("nested child is %T, want *Oscilloscope", sub.children[0])
	}
}

func TestParsePresetRejectsBadTOML(t *testing.T) {
	if _, _, _, err := ParsePreset("width = ["); err == nil {
		t.Error("malformed TOML did not error")
	}
}

func TestBuildTreeRejectsNonListRoot(t *testing.T) {
	_, err := BuildTree(PresetNode{Type: "fadeout"})
	if err == nil {
		t.Error("non-list root did not error")
	}
}

func TestRegisterEffect(t *testing.T) {
	RegisterEffect("test-noop", func(p *Params) (RenderNode, error) {
		return &stubEffect{}, nil
	})
	defer delete(effectRegistry, "test-noop")

	root, _, _, err := ParsePreset(`
[root]
[[root.children]]
type = "test-noop"
`)
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}
	defer root.Close()
	if root.NumChildren() != 1 {
		t.Errorf("registered effect not constructed")
	}
}

func TestPresetRenderEndToEnd(t *testing.T) {
	root, w, h, err := ParsePreset(testPreset)
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}
	defer root.Close()

	fb := make([]uint32, w*h)
	scratch := make([]uint32, w*h)
	audio := &AudioFrame{}
	for i := 0; i < AUDIO_SAMPLES; i++ {
		audio.Waveform[0][i] = 0.5
		audio.Waveform[1][i] = -0.5
	}
	ctx := NewRenderContext()
	for frame := 0; frame < 3; frame++ {
		root.Render(ctx, audio, BeatSignal{On: frame == 0}, fb, scratch, w, h)
	}
	// The oscilloscope layer must have left visible pixels somewhere.
	lit := 0
	for _, px := range fb {
		if px != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("end-to-end render produced an all-black frame")
	}
}
