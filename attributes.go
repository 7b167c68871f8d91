package sgl

import (
	"github.com/chewxy/math32"

	"github.com/Natashaaak/CustomSGL/internal/raster"
)

// inf32 is the depth value Clear(DepthBufferBit) resets the depth
// buffer to, matching the original's draw-time clear (distinct from
// the 1.0 a freshly constructed context's depth buffer starts at).
func inf32() float32 { return math32.Inf(1) }

// ClearColor sets the color subsequent Clear(ColorBufferBit) calls fill
// the color buffer with. Alpha is accepted for API symmetry with the
// classical fixed-function signature but unused (Pixel has no alpha
// channel).
func (m *Manager) ClearColor(r, g, b, a float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	c.clearColor = Pixel{R: r, G: g, B: b}
}

// Color3f sets the current drawing color used by subsequent primitives.
func (m *Manager) Color3f(r, g, b float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	c.currentColor = Pixel{R: r, G: g, B: b}
}

// PointSize sets the side length, in pixels, of the square stamped for
// each POINTS vertex. Must be strictly positive.
func (m *Manager) PointSize(s float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if s <= 0 {
		m.setError(InvalidValue)
		return
	}
	c.pointSize = s
}

// SetAreaMode selects how a filled primitive (Polygon, Circle, Ellipse,
// Arc) is realized.
func (m *Manager) SetAreaMode(mode AreaMode) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if !mode.valid() {
		m.setError(InvalidEnum)
		return
	}
	c.areaMode = mode
}

// Enable turns on the given capability. DepthTest is the only legal
// value.
func (m *Manager) Enable(capability Capability) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if capability != DepthTest {
		m.setError(InvalidEnum)
		return
	}
	c.buf.DepthTest = true
}

// Disable turns off the given capability. DepthTest is the only legal
// value.
func (m *Manager) Disable(capability Capability) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if capability != DepthTest {
		m.setError(InvalidEnum)
		return
	}
	c.buf.DepthTest = false
}

// Clear fills the color buffer, the depth buffer, or both, depending
// on mask (an OR of ColorBufferBit and DepthBufferBit). Any other bit
// set is InvalidValue and leaves both buffers untouched.
func (m *Manager) Clear(mask int) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if mask&^validClearBits != 0 {
		m.setError(InvalidValue)
		return
	}
	if mask&ColorBufferBit != 0 {
		c.buf.ClearColor(raster.Pixel{R: c.clearColor.R, G: c.clearColor.G, B: c.clearColor.B})
	}
	if mask&DepthBufferBit != 0 {
		c.buf.ClearDepth(inf32())
	}
}
