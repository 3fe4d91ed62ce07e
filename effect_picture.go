// effect_picture.go - Still image overlay effect

package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Picture blends a PNG into the frame. The image is decoded once at
// construction and rescaled only when the frame dimensions change.
// Parameters:
//
//	blend     int  BlendAdjustable
//	blendval  int  128
type Picture struct {
	params *Params
	src    *image.RGBA

	scaled     []uint32
	scaledW    int
	scaledH    int
	scaledRGBA *image.RGBA
}

// NewPicture loads the PNG at path. Unlike rendering, loading is fallible:
// a missing or corrupt file is a construction-time error.
func NewPicture(params *Params, path string) (*Picture, error) {
	if params == nil {
		params = NewParams()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("picture effect: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("picture effect: decode %s: %w", path, err)
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	xdraw.Copy(rgba, image.Point{}, img, bounds, xdraw.Src, nil)
	return &Picture{params: params, src: rgba}, nil
}

func (e *Picture) rescale(w, h int) {
	if e.scaledW == w && e.scaledH == h {
		return
	}
	e.scaledRGBA = image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(e.scaledRGBA, e.scaledRGBA.Bounds(), e.src, e.src.Bounds(), xdraw.Src, nil)

	e.scaled = make([]uint32, w*h)
	pix := e.scaledRGBA.Pix
	for i := 0; i < w*h; i++ {
		r := uint32(pix[i*4])
		g := uint32(pix[i*4+1])
		b := uint32(pix[i*4+2])
		e.scaled[i] = r<<16 | g<<8 | b
	}
	e.scaledW, e.scaledH = w, h
}

func (e *Picture) Render(ctx *RenderContext, audio *AudioFrame, beat BeatSignal, fbIn, fbOut []uint32, w, h int) RenderResult {
	if w <= 0 || h <= 0 || len(fbIn) < w*h {
		return 0
	}
	e.rescale(w, h)
	mode := BlendMode(e.params.Int("blend", int(BlendAdjustable)))
	BlendStage(mode, fbIn, e.scaled, w, h,
		e.params.Int("blendval", 128),
		e.params.Int("maskslot", 0),
		e.params.Bool("invert", false))
	return 0
}
