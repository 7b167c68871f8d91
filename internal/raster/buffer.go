// Package raster implements the pixel-level rasterization primitives:
// point stamping, Bresenham lines and circles, and active-edge-list
// polygon scan fill. It keeps its own minimal vertex/pixel types rather
// than importing the root package, so it has no dependency on context
// or scene state and can be exercised in isolation.
package raster

import "github.com/chewxy/math32"

// depthEpsilon is the margin by which a new fragment's depth must beat
// the stored depth to win the depth test.
const depthEpsilon = 4e-6

// Pixel is a packed RGB color, matching the 3-float layout of the public
// Pixel type field for field.
type Pixel struct {
	R, G, B float32
}

// ScreenVertex is an integer-raster coordinate with interpolated depth.
type ScreenVertex struct {
	X, Y int32
	Z    float32
}

// Buffer owns a color buffer (flattened w*h*3 floats, matching the
// external contiguous-float-array contract) and a depth buffer.
type Buffer struct {
	Width, Height int
	Color         []float32
	Depth         []float32
	DepthTest     bool
}

// NewBuffer allocates a buffer of the given dimensions. The depth buffer
// is initialized to 1.0, matching context construction.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		Width:     width,
		Height:    height,
		Color:     make([]float32, width*height*3),
		Depth:     make([]float32, width*height),
		DepthTest: true,
	}
	for i := range b.Depth {
		b.Depth[i] = 1.0
	}
	return b
}

func (b *Buffer) index(x, y int) int { return x + y*b.Width }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the color currently stored at (x, y). x, y must be in bounds.
func (b *Buffer) At(x, y int) Pixel {
	i := b.index(x, y) * 3
	return Pixel{R: b.Color[i], G: b.Color[i+1], B: b.Color[i+2]}
}

// Set writes a color at (x, y) unconditionally. x, y must be in bounds.
func (b *Buffer) Set(x, y int, p Pixel) {
	i := b.index(x, y) * 3
	b.Color[i], b.Color[i+1], b.Color[i+2] = p.R, p.G, p.B
}

// DepthAt returns the stored depth at (x, y). x, y must be in bounds.
func (b *Buffer) DepthAt(x, y int) float32 {
	return b.Depth[b.index(x, y)]
}

// ClearColor fills the entire color buffer with p.
func (b *Buffer) ClearColor(p Pixel) {
	for i := 0; i < len(b.Color); i += 3 {
		b.Color[i], b.Color[i+1], b.Color[i+2] = p.R, p.G, p.B
	}
}

// ClearDepth fills the entire depth buffer with v.
func (b *Buffer) ClearDepth(v float32) {
	for i := range b.Depth {
		b.Depth[i] = v
	}
}

// depthCheck tests and, on success, updates the depth buffer at an
// already-bounds-checked (x, y). With depth testing disabled it always
// succeeds and never touches the depth buffer.
func (b *Buffer) depthCheck(x, y int, z float32) bool {
	if !b.DepthTest {
		return true
	}
	idx := b.index(x, y)
	if z <= b.Depth[idx]-depthEpsilon {
		b.Depth[idx] = z
		return true
	}
	return false
}

// boundsAndDepthCheck combines the canvas bounds test with depthCheck.
func (b *Buffer) boundsAndDepthCheck(x, y int, z float32) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.depthCheck(x, y, z)
}

func invZ(z float32) float32 { return 1 / z }

func round32(v float32) int { return int(math32.Round(v)) }
