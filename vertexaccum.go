package sgl

import (
	"github.com/chewxy/math32"

	"github.com/Natashaaak/CustomSGL/internal/raster"
)

// Begin validates mode, marks insideBegin, and clears both vertex
// buffers. Outside a scene block it also refreshes VPM and scale
// factor, since the upcoming End will rasterize against them.
func (m *Manager) Begin(mode ElementType) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if !mode.valid() {
		m.setError(InvalidEnum)
		return
	}
	c.primitiveMode = mode
	c.insideBegin = true
	c.vertices = c.vertices[:0]
	c.screenVertices = c.screenVertices[:0]
	if !c.insideBeginScene {
		c.recomputeVPM()
	}
}

// Vertex3f appends a world-space vertex to the accumulator. Legal only
// inside a Begin/End block.
func (m *Manager) Vertex3f(x, y, z float32) {
	c, ok := m.drawContext()
	if !ok {
		return
	}
	c.vertices = append(c.vertices, NewVertex3(x, y, z))
}

// Vertex2f is Vertex3f with z implied to be 0.
func (m *Manager) Vertex2f(x, y float32) {
	m.Vertex3f(x, y, 0)
}

// Vertex4f has no implementation; callers may invoke it but it neither
// accumulates a vertex nor raises an error.
func (m *Manager) Vertex4f(x, y, z, w float32) {}

// End clears insideBegin, then either appends a triangle to the scene
// (inside a scene block) or rasterizes the accumulated vertices by
// primitive mode (outside one).
func (m *Manager) End() {
	c, ok := m.drawContext()
	if !ok {
		return
	}
	c.insideBegin = false
	if c.insideBeginScene {
		m.endSceneTriangle(c)
		return
	}
	m.endRasterize(c)
}

// endSceneTriangle constructs one triangle from the first three
// accumulated vertices, if at least three were given, and appends it
// to the scene bound to the latest material. Additional vertices are
// ignored; this is the documented behavior, not a bug.
func (m *Manager) endSceneTriangle(c *Context) {
	if len(c.vertices) < 3 {
		return
	}
	tri := Triangle{Points: [3]Vertex{c.vertices[0], c.vertices[1], c.vertices[2]}}
	c.scene.appendPrimitive(tri)
}

// endRasterize transforms every accumulated vertex through VPM into a
// screen vertex, then dispatches by primitive mode.
func (m *Manager) endRasterize(c *Context) {
	c.screenVertices = c.screenVertices[:0]
	for _, v := range c.vertices {
		c.screenVertices = append(c.screenVertices, toScreenVertex(c.vpm, v))
	}

	col := raster.Pixel{R: c.currentColor.R, G: c.currentColor.G, B: c.currentColor.B}
	verts := toRasterVerts(c.screenVertices)

	switch c.primitiveMode {
	case Points:
		n := int(math32.Round(c.pointSize))
		raster.DrawPoints(c.buf, verts, n, col)
	case Lines:
		drawSegments(c.buf, verts, col, false)
	case LineStrip:
		drawStrip(c.buf, verts, col, false)
	case LineLoop:
		drawStrip(c.buf, verts, col, true)
	case Polygon:
		m.drawPolygon(c, verts, col)
	case Triangles:
		// declared but never dispatched; no-op.
	}
}

func toScreenVertex(vpm Matrix, v Vertex) ScreenVertex {
	t := vpm.MulVertex(v)
	x, y, z := t.X, t.Y, t.Z
	if t.W != 0 {
		x, y, z = x/t.W, y/t.W, z/t.W
	}
	z = (z + 1) / 2
	return ScreenVertex{X: int32(math32.Round(x)), Y: int32(math32.Round(y)), Z: z}
}

func toRasterVerts(in []ScreenVertex) []raster.ScreenVertex {
	out := make([]raster.ScreenVertex, len(in))
	for i, v := range in {
		out[i] = raster.ScreenVertex{X: v.X, Y: v.Y, Z: v.Z}
	}
	return out
}

// drawSegments draws disjoint pairs; a trailing unpaired vertex is
// dropped.
func drawSegments(b *raster.Buffer, verts []raster.ScreenVertex, c raster.Pixel, _ bool) {
	for i := 0; i+1 < len(verts); i += 2 {
		raster.DrawBresenhamLine(b, verts[i], verts[i+1], c)
	}
}

// drawStrip draws consecutive pairs, optionally closing the loop back
// to the first vertex.
func drawStrip(b *raster.Buffer, verts []raster.ScreenVertex, c raster.Pixel, closed bool) {
	for i := 0; i+1 < len(verts); i++ {
		raster.DrawBresenhamLine(b, verts[i], verts[i+1], c)
	}
	if closed && len(verts) > 1 {
		raster.DrawBresenhamLine(b, verts[len(verts)-1], verts[0], c)
	}
}

// drawPolygon dispatches POLYGON per the current area mode: POINT as
// points, LINE as a closed outline, FILL as a scanline fill.
func (m *Manager) drawPolygon(c *Context, verts []raster.ScreenVertex, col raster.Pixel) {
	switch c.areaMode {
	case AreaPoint:
		n := int(math32.Round(c.pointSize))
		raster.DrawPoints(c.buf, verts, n, col)
	case AreaLine:
		drawStrip(c.buf, verts, col, true)
	case AreaFill:
		raster.FillPolygon(c.buf, verts, col)
	}
}
