// render_node.go - Render node contract for Pulse Engine

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/PulseEngine
License: GPLv3 or later
*/

package main

// Result bits a RenderNode may set. Anything outside ResultMask is reserved
// and stripped by the compositor before it acts on the code.
const (
	ResultSwapped   = 1 << 0 // output landed in fbOut, not fbIn
	ResultForceBeat = 1 << 1 // later siblings in this pass see beat on
	ResultClearBeat = 1 << 2 // later siblings in this pass see beat off

	ResultMask = ResultSwapped | ResultForceBeat | ResultClearBeat
)

// RenderResult is the bitmask returned by every RenderNode.
type RenderResult int

// BeatSignal is the per-frame beat state handed down the render tree.
// Forced marks a beat that was forced further up the tree; a script
// override must not replace a forced beat.
type BeatSignal struct {
	On     bool
	Forced bool
}

// RenderContext carries the per-pass rendering state that used to be
// process-wide: the blend mode line-drawing effects combine with. The
// compositor forces it to Replace around child execution and restores the
// caller's value on every exit path.
type RenderContext struct {
	LineBlendMode  BlendMode
	LineBlendAlpha int // used when LineBlendMode == BlendAdjustable
}

// NewRenderContext returns a context with neutral line blending.
func NewRenderContext() *RenderContext {
	return &RenderContext{LineBlendMode: BlendReplace, LineBlendAlpha: 255}
}

// RenderNode is the uniform call shape of every effect, leaf or composite.
//
// fbIn and fbOut are borrowed for the duration of the call only: an
// implementation must not resize, retain or free either one. A result of 0
// means the node's output is in fbIn; ResultSwapped means the output is in
// fbOut and the caller must treat the two buffers as having swapped roles
// for all subsequent siblings. Width and height are in pixels, buffers are
// row-major packed 0xAARRGGBB, length w*h.
type RenderNode interface {
	Render(ctx *RenderContext, audio *AudioFrame, beat BeatSignal, fbIn, fbOut []uint32, w, h int) RenderResult
}
