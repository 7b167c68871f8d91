package sgl

import "github.com/Natashaaak/CustomSGL/internal/raster"

// Context holds everything owned by one rendering surface: the color
// and depth buffers, the current primitive/area/matrix mode, the two
// matrix stacks, the vertex accumulators, the derived viewport and
// composite VPM, and the current scene.
type Context struct {
	width, height int
	buf           *raster.Buffer

	primitiveMode ElementType
	areaMode      AreaMode
	matrixMode    MatrixMode

	currentColor Pixel
	clearColor   Pixel
	pointSize    float32
	scaleFactor  float32

	insideBegin      bool
	insideBeginScene bool

	stacks   [2][]Matrix
	viewport Matrix
	vpm      Matrix

	vertices       []Vertex
	screenVertices []ScreenVertex

	scene *Scene
}

// newContext allocates a context of the given dimensions. The depth
// buffer starts at 1.0 (via raster.NewBuffer); both matrix stacks start
// with a single identity element; point size defaults to 1; area mode
// defaults to FILL.
func newContext(width, height int) *Context {
	return &Context{
		width:       width,
		height:      height,
		buf:         raster.NewBuffer(width, height),
		areaMode:    AreaFill,
		pointSize:   1,
		scaleFactor: 1,
		stacks:      [2][]Matrix{{NewMatrix()}, {NewMatrix()}},
		viewport:    NewMatrix(),
		vpm:         NewMatrix(),
		scene:       newScene(),
	}
}

// top returns the top matrix of the active stack.
func (c *Context) top() Matrix {
	s := c.stacks[c.matrixMode]
	return s[len(s)-1]
}

// setTop replaces the top matrix of the active stack.
func (c *Context) setTop(mat Matrix) {
	s := c.stacks[c.matrixMode]
	s[len(s)-1] = mat
}

// recomputeVPM recomputes the composite VPM = viewport * (projection *
// model-view) and the scalar scale factor derived from its 2x2 linear
// part, as required before every rasterized Begin/End block and before
// every Circle call.
func (c *Context) recomputeVPM() {
	projection := c.stacks[Projection][len(c.stacks[Projection])-1]
	modelView := c.stacks[ModelView][len(c.stacks[ModelView])-1]
	vpm := c.viewport.Mul(projection.Mul(modelView))
	if w := vpm.At(3, 3); w != 1 && w != 0 {
		vpm.DivScalar(w)
	}
	c.vpm = vpm
	c.scaleFactor = scaleFactorOf(vpm)
}
