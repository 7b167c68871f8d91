package sgl

import (
	"github.com/chewxy/math32"

	"github.com/Natashaaak/CustomSGL/internal/raster"
)

// rasterizePolygon feeds a set of world-space vertices through the same
// VPM-transform-and-dispatch path End uses, without going through the
// Begin/End guard chain a second time, dispatching under mode. Used by
// Ellipse and Arc.
func (m *Manager) rasterizePolygon(c *Context, verts []Vertex, mode ElementType) {
	c.recomputeVPM()
	c.vertices = verts
	c.primitiveMode = mode
	m.endRasterize(c)
}

// Circle draws a circle centered at (cx, cy, cz) with world-space
// radius. Non-positive radius is InvalidValue. Realized by the
// Bresenham circle rasterizer directly; POINT area mode degenerates to
// a single point at the transformed center.
func (m *Manager) Circle(cx, cy, cz, radius float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if radius <= 0 {
		m.setError(InvalidValue)
		return
	}
	c.recomputeVPM()
	center := toScreenVertex(c.vpm, NewVertex3(cx, cy, cz))
	col := raster.Pixel{R: c.currentColor.R, G: c.currentColor.G, B: c.currentColor.B}

	if c.areaMode == AreaPoint {
		raster.DrawPoints(c.buf, []raster.ScreenVertex{{X: center.X, Y: center.Y, Z: center.Z}},
			int(math32.Round(c.pointSize)), col)
		return
	}

	pixelRadius := int(math32.Round(radius * c.scaleFactor))
	raster.DrawBresenhamCircle(c.buf, int(center.X), int(center.Y), center.Z, pixelRadius,
		c.areaMode == AreaLine, col, true)
}

// Ellipse draws an ellipse centered at (cx, cy, cz) with radii rx, ry,
// as a 40-segment polyline passed through the same area-mode dispatch
// used by filled/outlined polygons. Non-positive rx or ry is
// InvalidValue.
func (m *Manager) Ellipse(cx, cy, cz, rx, ry float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if rx <= 0 || ry <= 0 {
		m.setError(InvalidValue)
		return
	}
	const segments = 40
	verts := make([]Vertex, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(segments)
		verts[i] = NewVertex3(cx+rx*math32.Cos(theta), cy+ry*math32.Sin(theta), cz)
	}
	m.rasterizePolygon(c, verts, Polygon)
}

// normalizeAngle folds a into [0, 2*pi).
func normalizeAngle(a float32) float32 {
	const twoPi = 2 * math32.Pi
	a = math32.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// Arc draws an elliptical arc centered at (cx, cy, cz) with radii rx,
// ry, sweeping from angle from to angle to (wrapped forward past from
// when to < from after normalization). from == to produces zero-length
// output with no writes. Non-positive rx or ry is InvalidValue. In FILL
// area mode the center vertex is prepended, forming a sector polygon;
// otherwise the arc is drawn as an open polyline, never closed back to
// its start.
func (m *Manager) Arc(cx, cy, cz, rx, ry, from, to float32) {
	c, ok := m.stateContext()
	if !ok {
		return
	}
	if rx <= 0 || ry <= 0 {
		m.setError(InvalidValue)
		return
	}
	if from == to {
		return
	}
	nFrom := normalizeAngle(from)
	nTo := normalizeAngle(to)
	if nTo < nFrom {
		nTo += 2 * math32.Pi
	}
	delta := nTo - nFrom

	segments := int(math32.Round(40 * math32.Abs(delta) / (2 * math32.Pi)))
	if segments < 1 {
		segments = 1
	}

	mode := LineStrip
	verts := make([]Vertex, 0, segments+2)
	if c.areaMode == AreaFill {
		mode = Polygon
		verts = append(verts, NewVertex3(cx, cy, cz))
	}
	for i := 0; i <= segments; i++ {
		theta := nFrom + delta*float32(i)/float32(segments)
		verts = append(verts, NewVertex3(cx+rx*math32.Cos(theta), cy+ry*math32.Sin(theta), cz))
	}
	m.rasterizePolygon(c, verts, mode)
}
