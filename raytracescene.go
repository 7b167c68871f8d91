package sgl

import (
	"runtime"

	"github.com/Natashaaak/CustomSGL/internal/raytrace"
)

// RayTraceScene composes PVM = projection * model-view (no viewport)
// for the current context, inverts it, and renders the current scene
// into the color buffer, partitioning scanlines across worker
// goroutines. A singular PVM aborts the render, logs at error level,
// and returns ErrSingularMatrix; no pixels beyond whatever workers had
// already written are modified. Must be called outside both a
// Begin/End block and a BeginScene/EndScene block.
func (m *Manager) RayTraceScene() error {
	c, ok := m.nonSceneContext()
	if !ok {
		return nil
	}

	projection := c.stacks[Projection][len(c.stacks[Projection])-1]
	modelView := c.stacks[ModelView][len(c.stacks[ModelView])-1]
	pvm := projection.Mul(modelView)

	inv := pvm
	if code := inv.Invert(); code != 0 {
		Logger().Error("ray trace aborted: singular projection*model-view matrix")
		return ErrSingularMatrix
	}

	rtScene := convertScene(c.scene, c.clearColor)

	workers := m.opts.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	Logger().Debug("ray trace dispatch", "workers", workers, "width", c.width, "height", c.height)

	raytrace.Render(rtScene, inv.Data(), c.width, c.height, workers, c.buf)
	if m.opts.antialiasing {
		raytrace.Antialiase(rtScene, inv.Data(), c.width, c.height, c.buf)
	}
	return nil
}

// RasterizeScene is reserved for a future software rasterization path
// over scene primitives; it has no implementation, matching the
// original source.
func (m *Manager) RasterizeScene() {}

// convertScene builds the flat, decoupled scene the ray tracer operates
// on from the context's richer Scene, dropping emissive materials
// (unused by the Phong shading equations this spec implements) and
// binding each primitive's sphere/triangle data plus material index.
func convertScene(s *Scene, clearColor Pixel) *raytrace.Scene {
	rt := &raytrace.Scene{
		ClearColor: raytrace.Pixel{R: clearColor.R, G: clearColor.G, B: clearColor.B},
	}
	for _, mat := range s.Materials {
		rt.Materials = append(rt.Materials, raytrace.Material{
			Color:     raytrace.Pixel{R: mat.Color.R, G: mat.Color.G, B: mat.Color.B},
			KDiffuse:  mat.KDiffuse,
			KSpecular: mat.KSpecular,
			Shininess: mat.Shininess,
			T:         mat.T,
			IOR:       mat.IOR,
		})
	}
	for _, l := range s.Lights {
		rt.Lights = append(rt.Lights, raytrace.PointLight{
			Center: toRTVertex(l.Center),
			Color:  raytrace.Pixel{R: l.Color.R, G: l.Color.G, B: l.Color.B},
		})
	}
	if s.EnvMap != nil {
		rt.EnvMap = &raytrace.EnvironmentMap{Width: s.EnvMap.Width, Height: s.EnvMap.Height, Texels: s.EnvMap.Texels}
	}
	for _, p := range s.Primitives {
		switch v := p.(type) {
		case Sphere:
			rt.Primitives = append(rt.Primitives, raytrace.Sphere{
				Center: toRTVertex(v.Center),
				Radius: v.Radius,
				MatID:  v.MaterialID,
			})
		case Triangle:
			rt.Primitives = append(rt.Primitives, raytrace.Triangle{
				P0:    toRTVertex(v.Points[0]),
				P1:    toRTVertex(v.Points[1]),
				P2:    toRTVertex(v.Points[2]),
				MatID: v.MaterialID,
			})
		}
	}
	return rt
}

func toRTVertex(v Vertex) raytrace.Vertex {
	return raytrace.Vertex{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}
