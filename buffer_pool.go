// buffer_pool.go - Shared global frame buffers for Pulse Engine

package main

// The global buffer pool is the one intentionally shared mutable resource in
// the renderer: eight lazily allocated frame-sized buffers visible to every
// effect in the tree, used by the buffer blend mode and by effects that keep
// image state across frames. Rendering is single threaded; any future
// multi-threaded driver must synchronise around these before calling into
// the render tree concurrently.

const GLOBAL_BUFFER_COUNT = 8

type globalBufferSlot struct {
	pixels []uint32
	w, h   int
}

var globalBuffers [GLOBAL_BUFFER_COUNT]globalBufferSlot

// GlobalBuffer returns the frame buffer stored in slot, allocating a
// zeroed one when alloc is set. A slot holding mismatched dimensions is
// released first. Returns nil when slot is out of range, or when the slot
// is empty and allocation was not requested.
func GlobalBuffer(w, h, slot int, alloc bool) []uint32 {
	if slot < 0 || slot >= GLOBAL_BUFFER_COUNT || w <= 0 || h <= 0 {
		return nil
	}
	s := &globalBuffers[slot]
	if s.pixels != nil && s.w == w && s.h == h {
		return s.pixels
	}
	s.pixels = nil
	s.w, s.h = 0, 0
	if !alloc {
		return nil
	}
	s.pixels = make([]uint32, w*h)
	s.w, s.h = w, h
	return s.pixels
}

// ClearGlobalBuffers releases every slot. Called on preset switch so one
// preset's image state never bleeds into the next.
func ClearGlobalBuffers() {
	for i := range globalBuffers {
		globalBuffers[i] = globalBufferSlot{}
	}
}
