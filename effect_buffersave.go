// effect_buffersave.go - Save/restore frames through the global buffer pool

package main

// BufferSave moves image data between the frame and one of the eight global
// buffer slots, with a configurable blend in either direction. Paired
// instances (one saving early in the chain, one restoring later) build
// feedback and echo structures. Parameters:
//
//	slot      int  0         (global buffer slot, 0-7)
//	mode      int  0         (0 = save, 1 = restore, 2 = alternate save/restore)
//	blend     int  BlendReplace
//	blendval  int  128       (alpha for adjustable blend)
//	invert    bool false     (invert for buffer-mask blend)
//	maskslot  int  0         (slot for buffer-mask blend)
const (
	BUFFER_SAVE      = 0
	BUFFER_RESTORE   = 1
	BUFFER_ALTERNATE = 2
)

type BufferSave struct {
	params  *Params
	restore bool // phase for alternate mode
}

func NewBufferSave(params *Params) *BufferSave {
	if params == nil {
		params = NewParams()
	}
	return &BufferSave{params: params}
}

func (e *BufferSave) Render(ctx *RenderContext, audio *AudioFrame, beat BeatSignal, fbIn, fbOut []uint32, w, h int) RenderResult {
	n := w * h
	if n <= 0 || len(fbIn) < n {
		return 0
	}
	slot := e.params.Int("slot", 0)

	doRestore := false
	switch e.params.Int("mode", BUFFER_SAVE) {
	case BUFFER_RESTORE:
		doRestore = true
	case BUFFER_ALTERNATE:
		doRestore = e.restore
		e.restore = !e.restore
	}

	// Saving allocates the slot on demand; restoring from a slot that was
	// never written is a no-op.
	buf := GlobalBuffer(w, h, slot, !doRestore)
	if buf == nil {
		return 0
	}

	mode := BlendMode(e.params.Int("blend", int(BlendReplace)))
	alpha := e.params.Int("blendval", 128)
	maskSlot := e.params.Int("maskslot", 0)
	invert := e.params.Bool("invert", false)

	if doRestore {
		BlendStage(mode, fbIn, buf, w, h, alpha, maskSlot, invert)
	} else {
		BlendStage(mode, buf, fbIn, w, h, alpha, maskSlot, invert)
	}
	return 0
}
