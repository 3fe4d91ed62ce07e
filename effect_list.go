// effect_list.go - Ordered effect list compositor for Pulse Engine

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/PulseEngine
License: GPLv3 or later
*/

/*
effect_list.go - the compositing core of the render tree.

An EffectList owns an ordered list of child RenderNodes and turns their
individual outputs into one frame. It is itself a RenderNode, so lists nest
to arbitrary depth. Per call it:

1. Arms the fake-enable counter when a beat arrives and beat_render is set.
2. Optionally lets an embedded script override its own control state
   (enabled, clear, beat, input/output alpha).
3. Picks one of two compositing routes:
   - the in-place route when both blend stages are Replace, running children
     directly against the caller's two buffers;
   - the buffered route otherwise, blending the caller's frame into an
     internally owned buffer on entry and back out on exit.
4. Runs children strictly in order. Each child may flip which buffer holds
   the current image (swap bit) and may force or clear the beat flag seen by
   every later sibling in the same pass.

The caller's line blend mode is saved, forced to Replace around child
execution, and restored on both routes.
*/

package main

// Parameter keys an EffectList reads. Defaults apply when a key is absent.
//
//	enabled            bool  true
//	clear_each_frame   bool  false
//	blendin            int   BlendReplace
//	blendout           int   BlendReplace
//	inblendval         int   128   (alpha for adjustable input blend)
//	outblendval        int   128   (alpha for adjustable output blend)
//	bufferin           int   0     (slot for buffer-mask input blend)
//	bufferout          int   0     (slot for buffer-mask output blend)
//	ininvert           bool  false
//	outinvert          bool  false
//	beat_render        bool  false
//	beat_render_frames int   1
//	use_code           bool  false
//	init_script        string ""
//	frame_script       string ""
type EffectList struct {
	params   *Params
	children []RenderNode

	// Internal compositing buffer for the buffered route. Owned exclusively
	// by this list, reallocated only when the frame dimensions change, and
	// otherwise carried across frames so accumulating effects keep their
	// state.
	buffer     []uint32
	bufW, bufH int

	// While positive the list renders even when its enabled parameter is
	// off. Armed by a beat when beat_render is set, decremented once per
	// call.
	fakeEnabled int

	script      *ScriptHost
	initScript  *CompiledScript
	frameScript *CompiledScript
	initSrc     string
	frameSrc    string
	inited      bool
}

// NewEffectList creates an empty list reading its configuration from params.
// A nil params behaves as an empty store, so every key takes its default.
func NewEffectList(params *Params) *EffectList {
	if params == nil {
		params = NewParams()
	}
	return &EffectList{params: params}
}

// AddChild appends a node. Order matters: children composite and mutate the
// beat flag strictly in sequence.
func (el *EffectList) AddChild(node RenderNode) {
	el.children = append(el.children, node)
}

// NumChildren returns the number of direct children.
func (el *EffectList) NumChildren() int {
	return len(el.children)
}

// Params exposes the list's parameter store.
func (el *EffectList) Params() *Params {
	return el.params
}

// Close releases the embedded script state, if one was ever created.
func (el *EffectList) Close() {
	if el.script != nil {
		el.script.Close()
		el.script = nil
	}
}

func (el *EffectList) Render(ctx *RenderContext, audio *AudioFrame, beat BeatSignal, fbIn, fbOut []uint32, w, h int) RenderResult {
	n := w * h
	if n <= 0 || len(fbIn) < n || len(fbOut) < n {
		return 0
	}
	p := el.params

	if beat.On && p.Bool("beat_render", false) {
		el.fakeEnabled = p.Int("beat_render_frames", 1)
	}
	enabled := p.Bool("enabled", true) || el.fakeEnabled > 0
	clearFrame := p.Bool("clear_each_frame", false)
	alphaIn := p.Int("inblendval", 128)
	alphaOut := p.Int("outblendval", 128)

	if p.Bool("use_code", false) {
		el.syncScripts()
		host := el.script
		host.SetVar("beat", boolToVar(beat.On))
		host.SetVar("enabled", boolToVar(enabled))
		host.SetVar("clear", boolToVar(clearFrame))
		host.SetVar("alphain", float64(alphaIn)/255)
		host.SetVar("alphaout", float64(alphaOut)/255)
		host.SetVar("w", float64(w))
		host.SetVar("h", float64(h))
		if !el.inited {
			host.Execute(el.initScript)
			el.inited = true
		}
		host.Execute(el.frameScript)
		if !beat.Forced {
			beat.On = varToBool(host.GetVar("beat"))
		}
		enabled = varToBool(host.GetVar("enabled"))
		clearFrame = varToBool(host.GetVar("clear"))
		alphaIn = varToAlpha(host.GetVar("alphain"))
		alphaOut = varToAlpha(host.GetVar("alphaout"))
	}

	// Disabled: no buffer is touched and no shared rendering state moves.
	if !enabled {
		el.tickFakeEnable()
		return 0
	}

	inMode := BlendMode(p.Int("blendin", int(BlendReplace)))
	outMode := BlendMode(p.Int("blendout", int(BlendReplace)))

	if inMode == BlendReplace && outMode == BlendReplace {
		// In-place route: children work directly on the caller's buffers.
		if clearFrame {
			for i := 0; i < n; i++ {
				fbIn[i] = 0
			}
		}
		endedInOut := el.runChildren(ctx, audio, beat, fbIn, fbOut, w, h)
		if endedInOut {
			copy(fbIn[:n], fbOut[:n])
		}
		el.tickFakeEnable()
		return 0
	}

	// Buffered route.
	if el.bufW != w || el.bufH != h {
		el.buffer = make([]uint32, n)
		el.bufW, el.bufH = w, h
	} else if clearFrame {
		for i := range el.buffer {
			el.buffer[i] = 0
		}
	}
	BlendStage(inMode, el.buffer, fbIn, w, h, alphaIn,
		p.Int("bufferin", 0), p.Bool("ininvert", false))

	endedInOut := el.runChildren(ctx, audio, beat, el.buffer, fbOut, w, h)
	if endedInOut {
		copy(el.buffer, fbOut[:n])
	}

	BlendStage(outMode, fbIn, el.buffer, w, h, alphaOut,
		p.Int("bufferout", 0), p.Bool("outinvert", false))
	el.tickFakeEnable()
	return 0
}

// runChildren executes every child in order against the (bufA, bufB) pair,
// tracking which buffer holds the current image through the swap bit.
// Returns true when the pass ended with the current image in bufB.
//
// The caller's line blend mode is scoped here: forced to Replace for the
// children, restored before returning on every path.
func (el *EffectList) runChildren(ctx *RenderContext, audio *AudioFrame, beat BeatSignal, bufA, bufB []uint32, w, h int) bool {
	savedMode := ctx.LineBlendMode
	savedAlpha := ctx.LineBlendAlpha
	ctx.LineBlendMode = BlendReplace
	ctx.LineBlendAlpha = 255

	cur := 0 // 0 = current image in bufA, 1 = in bufB
	for _, child := range el.children {
		var res RenderResult
		if cur == 0 {
			res = child.Render(ctx, audio, beat, bufA, bufB, w, h)
		} else {
			res = child.Render(ctx, audio, beat, bufB, bufA, w, h)
		}
		res &= ResultMask // undefined bits are dropped, never propagated

		if res&ResultSwapped != 0 {
			cur ^= 1
		}
		// Beat mutation is immediate: the next sibling already sees it.
		// A forced beat is marked so nested scripts cannot override it;
		// when a child sets both bits, clear wins.
		if res&ResultForceBeat != 0 {
			beat.On = true
			beat.Forced = true
		}
		if res&ResultClearBeat != 0 {
			beat.On = false
		}
	}

	ctx.LineBlendMode = savedMode
	ctx.LineBlendAlpha = savedAlpha
	return cur == 1
}

func (el *EffectList) syncScripts() {
	if el.script == nil {
		el.script = NewScriptHost()
	}
	if initSrc := el.params.String("init_script", ""); el.initScript == nil || initSrc != el.initSrc {
		el.initScript = el.script.Compile(initSrc)
		el.initSrc = initSrc
		el.inited = false
	}
	if frameSrc := el.params.String("frame_script", ""); el.frameScript == nil || frameSrc != el.frameSrc {
		el.frameScript = el.script.Compile(frameSrc)
		el.frameSrc = frameSrc
	}
}

func (el *EffectList) tickFakeEnable() {
	if el.fakeEnabled > 0 {
		el.fakeEnabled--
	}
}

func boolToVar(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Script variables are booleanized with a deadband of 0.1 around zero.
// The exact threshold is observable behaviour; do not tighten it.
func varToBool(v float64) bool {
	return v > 0.1 || v < -0.1
}

func varToAlpha(v float64) int {
	a := int(v * 255)
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return a
}
