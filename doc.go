// Package sgl provides a software 2D/3D graphics library: an
// immediate-mode rasterizer (points, lines, polygons, circles, ellipses,
// arcs, depth buffering, a matrix transform stack) and a recursive ray
// tracer (spheres, triangles, Phong shading, reflection/refraction,
// environment maps, adaptive supersampling), built around a stateful
// "current context" API that mirrors classical fixed-function graphics:
// state and vertex commands are issued between paired begin/end markers
// against whichever context is current.
//
// # Quick start
//
//	mgr := sgl.NewManager()
//	id := mgr.CreateContext(200, 200)
//	mgr.SetContext(id)
//	mgr.Viewport(0, 0, 200, 200)
//	mgr.ClearColor(0, 0, 0, 1)
//	mgr.Clear(sgl.ColorBufferBit | sgl.DepthBufferBit)
//	mgr.Color3f(1, 0, 0)
//	mgr.Begin(sgl.Points)
//	mgr.Vertex3f(0, 0, 0)
//	mgr.End()
//
// # Coordinate system
//
// Matrices are row-major internally; externally supplied flat float
// arrays are column-major and transposed on ingest. The viewport matrix
// composes with the projection and model-view stacks into VPM for
// rasterization; ray tracing uses the projection*model-view composite
// alone (no viewport), inverted to build primary rays.
//
// # Errors
//
// Every command funnels failures into a sticky, first-error-wins
// register read with GetError rather than through Go error returns —
// that register is this library's error-handling contract, mirroring
// the fixed-function APIs it imitates. See Manager.GetError. The one
// Go error return is RayTraceScene's ErrSingularMatrix, reported when
// the projection*model-view composite cannot be inverted.
package sgl
