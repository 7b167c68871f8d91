package sgl

import "testing"

func colorAt(mgr *Manager, w, x, y int) (r, g, b float32) {
	buf := mgr.GetColorBufferPointer()
	idx := (x + y*w) * 3
	return buf[idx], buf[idx+1], buf[idx+2]
}

func TestScenario2PointWithDepthRemap(t *testing.T) {
	mgr, id := newTestManager(10, 10)
	mgr.Viewport(0, 0, 10, 10)
	mgr.Color3f(1, 1, 1)

	mgr.Begin(Points)
	mgr.Vertex3f(0, 0, 0)
	mgr.End()

	r, g, b := colorAt(mgr, 10, 5, 5)
	if r != 1 || g != 1 || b != 1 {
		t.Errorf("pixel(5,5) = (%v,%v,%v), want (1,1,1)", r, g, b)
	}
	if d := mgr.contexts[id].buf.DepthAt(5, 5); d != 0.5 {
		t.Errorf("depth(5,5) = %v, want 0.5", d)
	}
}

func TestScenario3DiagonalLine(t *testing.T) {
	mgr, id := newTestManager(10, 10)
	mgr.Ortho(-1, 1, -1, 1, -1, 1)
	mgr.Viewport(0, 0, 10, 10)
	mgr.Color3f(1, 1, 1)

	mgr.Begin(Lines)
	mgr.Vertex3f(-1, -1, 0)
	mgr.Vertex3f(1, 1, 0)
	mgr.End()

	for i := 0; i < 10; i++ {
		r, _, _ := colorAt(mgr, 10, i, i)
		if r != 1 {
			t.Errorf("diagonal pixel (%d,%d) not lit", i, i)
		}
	}
	_ = id
}

func TestScenario4FilledTriangleTopOpenEdge(t *testing.T) {
	mgr, _ := newTestManager(10, 10)
	mgr.Ortho(0, 10, 0, 10, -1, 1)
	mgr.Viewport(0, 0, 10, 10)
	mgr.Color3f(1, 1, 1)
	mgr.SetAreaMode(AreaFill)

	mgr.Begin(Polygon)
	mgr.Vertex3f(2, 2, 0)
	mgr.Vertex3f(8, 2, 0)
	mgr.Vertex3f(5, 8, 0)
	mgr.End()

	if r, _, _ := colorAt(mgr, 10, 5, 5); r != 1 {
		t.Error("pixel (5,5) should be lit inside the triangle")
	}
	if r, _, _ := colorAt(mgr, 10, 0, 0); r != 0 {
		t.Error("pixel (0,0) should not be lit, outside the triangle")
	}
	if r, _, _ := colorAt(mgr, 10, 5, 8); r != 0 {
		t.Error("pixel (5,8) should not be lit under the top-open edge convention")
	}
}

func TestLinesDropsTrailingUnpairedVertex(t *testing.T) {
	mgr, id := newTestManager(10, 10)
	mgr.Viewport(0, 0, 10, 10)
	mgr.Color3f(1, 0, 0)

	mgr.Begin(Lines)
	mgr.Vertex3f(0, 0, 0)
	mgr.Vertex3f(1, 1, 0)
	mgr.Vertex3f(2, 2, 0) // unpaired, dropped
	mgr.End()

	ctx := mgr.contexts[id]
	if len(ctx.vertices) != 3 {
		t.Fatalf("accumulator kept %d vertices, want 3 before dispatch drops the trailing one", len(ctx.vertices))
	}
}

func TestVertex4fIsNoOp(t *testing.T) {
	mgr, id := newTestManager(4, 4)
	mgr.Begin(Points)
	before := len(mgr.contexts[id].vertices)
	mgr.Vertex4f(1, 2, 3, 4)
	if len(mgr.contexts[id].vertices) != before {
		t.Error("Vertex4f mutated the vertex accumulator; spec treats it as a no-op")
	}
	mgr.End()
}

func TestTrianglesElementTypeIsNoOp(t *testing.T) {
	mgr, _ := newTestManager(4, 4)
	mgr.Viewport(0, 0, 4, 4)
	before := append([]float32{}, mgr.GetColorBufferPointer()...)

	mgr.Begin(Triangles)
	mgr.Vertex3f(0, 0, 0)
	mgr.Vertex3f(1, 1, 0)
	mgr.Vertex3f(2, 2, 0)
	mgr.End()

	after := mgr.GetColorBufferPointer()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("TRIANGLES dispatch wrote pixels; spec treats it as undispatched")
		}
	}
}

func TestVertex2fImpliesZeroZ(t *testing.T) {
	mgr, id := newTestManager(4, 4)
	mgr.Begin(Points)
	mgr.Vertex2f(1, 2)
	mgr.End()
	v := mgr.contexts[id].vertices[0]
	if v.Z != 0 || v.W != 1 {
		t.Errorf("Vertex2f(1,2) = %v, want Z=0 W=1", v)
	}
}
