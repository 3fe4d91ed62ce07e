// effects_test.go - Leaf effect test suite

package main

import "testing"

func TestClearScreenFillsFrame(t *testing.T) {
	const w, h = 4, 4
	p := NewParams()
	p.SetInt("color", 0x00123456)
	e := NewClearScreen(p)
	fb := testFrame(w, h)
	scratch := make([]uint32, w*h)

	if res := e.Render(NewRenderContext(), &AudioFrame{}, BeatSignal{}, fb, scratch, w, h); res != 0 {
		t.Errorf("result = %#x, want 0", int(res))
	}
	for i, px := range fb {
		if px != 0x00123456 {
			t.Fatalf("pixel %d = %08x, want 00123456", i, px)
		}
	}
}

func TestClearScreenOnlyBeat(t *testing.T) {
	const w, h = 4, 4
	p := NewParams()
	p.SetInt("color", 0x00FF0000)
	p.SetBool("only_beat", true)
	e := NewClearScreen(p)

	fb := testFrame(w, h)
	orig := append([]uint32(nil), fb...)
	scratch := make([]uint32, w*h)

	e.Render(NewRenderContext(), &AudioFrame{}, BeatSignal{}, fb, scratch, w, h)
	framesEqual(t, fb, orig)

	e.Render(NewRenderContext(), &AudioFrame{}, BeatSignal{On: true}, fb, scratch, w, h)
	if fb[0] != 0x00FF0000 {
		t.Errorf("beat frame not cleared: %08x", fb[0])
	}
}

func TestFadeoutConvergesToTarget(t *testing.T) {
	const w, h = 2, 2
	p := NewParams()
	p.SetInt("color", 0x00400000)
	p.SetInt("speed", 0x20)
	e := NewFadeout(p)

	fb := []uint32{0x00FF0000, 0x00000000, 0x00404040, 0x00400000}
	scratch := make([]uint32, w*h)
	ctx := NewRenderContext()
	for i := 0; i < 16; i++ {
		e.Render(ctx, &AudioFrame{}, BeatSignal{}, fb, scratch, w, h)
	}
	for i, px := range fb {
		if px != 0x00400000 {
			t.Errorf("pixel %d did not converge: %08x", i, px)
		}
	}
}

func TestFadeoutStepSize(t *testing.T) {
	const w, h = 1, 1
	p := NewParams()
	p.SetInt("speed", 0x10)
	e := NewFadeout(p) // target black
	fb := []uint32{0x00806040}
	scratch := make([]uint32, 1)

	e.Render(NewRenderContext(), &AudioFrame{}, BeatSignal{}, fb, scratch, w, h)
	if fb[0] != 0x00705030 {
		t.Errorf("after one step: %08x, want 00705030", fb[0])
	}
}

func TestBufferSaveRoundTrip(t *testing.T) {
	const w, h = 4, 4
	ClearGlobalBuffers()
	t.Cleanup(ClearGlobalBuffers)

	saveParams := NewParams()
	saveParams.SetInt("slot", 6)
	saveParams.SetInt("mode", BUFFER_SAVE)
	save := NewBufferSave(saveParams)

	restoreParams := NewParams()
	restoreParams.SetInt("slot", 6)
	restoreParams.SetInt("mode", BUFFER_RESTORE)
	restore := NewBufferSave(restoreParams)

	ctx := NewRenderContext()
	audio := &AudioFrame{}
	scratch := make([]uint32, w*h)

	fb := testFrame(w, h)
	saved := append([]uint32(nil), fb...)
	save.Render(ctx, audio, BeatSignal{}, fb, scratch, w, h)

	// Trash the frame, then restore.
	for i := range fb {
		fb[i] = 0x00BADBAD
	}
	restore.Render(ctx, audio, BeatSignal{}, fb, scratch, w, h)
	framesEqual(t, fb, saved)
}

func TestBufferSaveRestoreWithoutSaveIsNoOp(t *testing.T) {
	const w, h = 4, 4
	ClearGlobalBuffers()
	t.Cleanup(ClearGlobalBuffers)

	p := NewParams()
	p.SetInt("slot", 2)
	p.SetInt("mode", BUFFER_RESTORE)
	e := NewBufferSave(p)

	fb := testFrame(w, h)
	orig := append([]uint32(nil), fb...)
	scratch := make([]uint32, w*h)
	e.Render(NewRenderContext(), &AudioFrame{}, BeatSignal{}, fb, scratch, w, h)
	framesEqual(t, fb, orig)
}

func TestBufferSaveAlternateFlipsPhase(t *testing.T) {
	const w, h = 2, 2
	ClearGlobalBuffers()
	t.Cleanup(ClearGlobalBuffers)

	p := NewParams()
	p.SetInt("slot", 1)
	p.SetInt("mode", BUFFER_ALTERNATE)
	e := NewBufferSave(p)

	ctx := NewRenderContext()
	audio := &AudioFrame{}
	scratch := make([]uint32, w*h)

	// First call saves.
	fb := []uint32{1, 2, 3, 4}
	e.Render(ctx, audio, BeatSignal{}, fb, scratch, w, h)

	// Second call restores the saved image over a changed frame.
	fb2 := []uint32{9, 9, 9, 9}
	e.Render(ctx, audio, BeatSignal{}, fb2, scratch, w, h)
	framesEqual(t, fb2, []uint32{1, 2, 3, 4})
}

func TestOscilloscopeDrawsMidlineOnSilence(t *testing.T) {
	const w, h = 16, 16
	e := NewOscilloscope(nil)
	fb := make([]uint32, w*h)
	scratch := make([]uint32, w*h)

	e.Render(NewRenderContext(), &AudioFrame{}, BeatSignal{}, fb, scratch, w, h)

	mid := h / 2
	for x := 0; x < w; x++ {
		if fb[mid*w+x] != 0x00FFFFFF {
			t.Fatalf("midline pixel (%d,%d) not drawn: %08x", x, mid, fb[mid*w+x])
		}
	}
}

func TestOscilloscopeHonorsLineBlendMode(t *testing.T) {
	const w, h = 8, 8
	p := NewParams()
	p.SetInt("color", 0x00010101)
	e := NewOscilloscope(p)

	fb := make([]uint32, w*h)
	for i := range fb {
		fb[i] = 0x00040404
	}
	scratch := make([]uint32, w*h)
	ctx := NewRenderContext()
	ctx.LineBlendMode = BlendAdditive

	e.Render(ctx, &AudioFrame{}, BeatSignal{}, fb, scratch, w, h)

	mid := h / 2
	if fb[mid*w+2] != 0x00050505 {
		t.Errorf("additive line blend not applied: %08x", fb[mid*w+2])
	}
}

func TestSpectrumBarsBaselineAlwaysDrawn(t *testing.T) {
	const w, h = 16, 16
	e := NewSpectrumBars(nil)
	fb := make([]uint32, w*h)
	scratch := make([]uint32, w*h)

	e.Render(NewRenderContext(), &AudioFrame{}, BeatSignal{}, fb, scratch, w, h)

	lit := 0
	for x := 0; x < w; x++ {
		if fb[(h-1)*w+x] != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("bottom row has no bar baseline pixels")
	}
}
