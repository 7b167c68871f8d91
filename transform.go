package sgl

import "github.com/chewxy/math32"

// scaleFactorOf derives the radius-scaling factor from the 2x2 linear
// part of a VPM, used to convert world-space circle/ellipse/arc radii
// into pixel units.
func scaleFactorOf(vpm Matrix) float32 {
	det := vpm.At(0, 0)*vpm.At(1, 1) - vpm.At(0, 1)*vpm.At(1, 0)
	if det < 0 {
		det = -det
	}
	return math32.Sqrt(det)
}

func buildTranslation(x, y, z float32) Matrix {
	m := NewMatrix()
	m.data[3], m.data[7], m.data[11] = x, y, z
	return m
}

func buildScale(x, y, z float32) Matrix {
	var m Matrix
	m.data[0], m.data[5], m.data[10], m.data[15] = x, y, z, 1
	return m
}

// buildRotateY rotates angle radians about the Y axis.
func buildRotateY(angle float32) Matrix {
	s, c := math32.Sin(angle), math32.Cos(angle)
	m := NewMatrix()
	m.data[0], m.data[2] = c, s
	m.data[8], m.data[10] = -s, c
	return m
}

// buildRotateZ rotates angle radians about the Z axis (the 2D rotation
// Rotate2D composes around a pivot).
func buildRotateZ(angle float32) Matrix {
	s, c := math32.Sin(angle), math32.Cos(angle)
	m := NewMatrix()
	m.data[0], m.data[1] = c, -s
	m.data[4], m.data[5] = s, c
	return m
}

// buildOrtho constructs the standard orthographic projection matrix
// mapping [l,r]x[b,t]x[n,f] to the canonical [-1,1]^3 clip cube.
func buildOrtho(l, r, b, t, n, f float32) Matrix {
	var m Matrix
	m.data[0] = 2 / (r - l)
	m.data[3] = -(r + l) / (r - l)
	m.data[5] = 2 / (t - b)
	m.data[7] = -(t + b) / (t - b)
	m.data[10] = -2 / (f - n)
	m.data[11] = -(f + n) / (f - n)
	m.data[15] = 1
	return m
}

// buildFrustum constructs the standard perspective frustum matrix.
func buildFrustum(l, r, b, t, n, f float32) Matrix {
	var m Matrix
	m.data[0] = 2 * n / (r - l)
	m.data[2] = (r + l) / (r - l)
	m.data[5] = 2 * n / (t - b)
	m.data[6] = (t + b) / (t - b)
	m.data[10] = -(f + n) / (f - n)
	m.data[11] = -2 * f * n / (f - n)
	m.data[14] = -1
	return m
}

// MatrixMode selects which of the two matrix stacks subsequent
// transform commands apply to.
func (m *Manager) MatrixMode(mode MatrixMode) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if !mode.valid() {
		m.setError(InvalidEnum)
		return
	}
	c.matrixMode = mode
}

// PushMatrix duplicates the top of the active stack.
func (m *Manager) PushMatrix() {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	c.stacks[c.matrixMode] = append(c.stacks[c.matrixMode], c.top())
}

// PopMatrix removes the top of the active stack. Popping the last
// remaining element is a StackUnderflow, not a truncation.
func (m *Manager) PopMatrix() {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	stack := c.stacks[c.matrixMode]
	if len(stack) == 1 {
		m.setError(StackUnderflow)
		return
	}
	c.stacks[c.matrixMode] = stack[:len(stack)-1]
}

// LoadIdentity replaces the top of the active stack with identity.
func (m *Manager) LoadIdentity() {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	c.setTop(NewMatrix())
}

// LoadMatrix replaces the top of the active stack with flat, read as
// column-major and transposed on ingest.
func (m *Manager) LoadMatrix(flat [16]float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	c.setTop(NewMatrixFromColumnMajor(flat))
}

// MultMatrix right-multiplies the top of the active stack by flat,
// read as column-major and transposed on ingest.
func (m *Manager) MultMatrix(flat [16]float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	c.setTop(c.top().Mul(NewMatrixFromColumnMajor(flat)))
}

// Translate right-multiplies the top of the active stack by a
// translation.
func (m *Manager) Translate(x, y, z float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	c.setTop(c.top().Mul(buildTranslation(x, y, z)))
}

// Scale right-multiplies the top of the active stack by a scale.
func (m *Manager) Scale(x, y, z float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	c.setTop(c.top().Mul(buildScale(x, y, z)))
}

// Rotate2D is sugar for translate(cx,cy,0) * rotateZ(angle) *
// translate(-cx,-cy,0), right-multiplied onto the top of the active
// stack: a rotation about the pivot (cx, cy) in the XY plane.
func (m *Manager) Rotate2D(angle, cx, cy float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	pivoted := buildTranslation(cx, cy, 0).Mul(buildRotateZ(angle)).Mul(buildTranslation(-cx, -cy, 0))
	c.setTop(c.top().Mul(pivoted))
}

// RotateY right-multiplies the top of the active stack by a rotation
// about the Y axis.
func (m *Manager) RotateY(angle float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	c.setTop(c.top().Mul(buildRotateY(angle)))
}

// Ortho right-multiplies the top of the active stack by an orthographic
// projection. Degenerate bounds (l==r, b==t, or n==f) are InvalidValue.
func (m *Manager) Ortho(l, r, b, t, n, f float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if l == r || b == t || n == f {
		m.setError(InvalidValue)
		return
	}
	c.setTop(c.top().Mul(buildOrtho(l, r, b, t, n, f)))
}

// Frustum right-multiplies the top of the active stack by a perspective
// frustum. Non-positive near/far planes are InvalidValue.
func (m *Manager) Frustum(l, r, b, t, n, f float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if n <= 0 || f <= 0 {
		m.setError(InvalidValue)
		return
	}
	c.setTop(c.top().Mul(buildFrustum(l, r, b, t, n, f)))
}

// Viewport stores the viewport matrix directly on the context (not on
// either stack). Non-positive width/height is InvalidValue.
func (m *Manager) Viewport(x, y, w, h float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if w <= 0 || h <= 0 {
		m.setError(InvalidValue)
		return
	}
	// Standard NDC-to-screen viewport: maps [-1,1] in X,Y to [x, x+w],
	// [y, y+h]; Z passes through unchanged (remapped separately in End).
	var vp Matrix
	vp.data[0] = w / 2
	vp.data[3] = x + w/2
	vp.data[5] = h / 2
	vp.data[7] = y + h/2
	vp.data[10] = 1
	vp.data[15] = 1
	c.viewport = vp
}
