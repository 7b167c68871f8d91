package raytrace

import (
	"testing"

	"github.com/Natashaaak/CustomSGL/internal/raster"
)

func identityInvPVM() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func TestTraceRayMissReturnsClearColor(t *testing.T) {
	scene := &Scene{ClearColor: Pixel{R: 0.2, G: 0.3, B: 0.4}}
	ray := Ray{Origin: Vertex{W: 1}, Dir: Vertex{Z: -1}}
	got := traceRay(scene, ray, 0)
	if got != scene.ClearColor {
		t.Errorf("traceRay miss = %v, want clear color %v", got, scene.ClearColor)
	}
}

func TestTraceRayMissSamplesEnvironmentMapOverClearColor(t *testing.T) {
	scene := &Scene{
		ClearColor: Pixel{R: 1},
		EnvMap: &EnvironmentMap{Width: 1, Height: 1, Texels: []float32{0, 1, 0}},
	}
	ray := Ray{Origin: Vertex{W: 1}, Dir: Vertex{Z: -1}}
	got := traceRay(scene, ray, 0)
	if got.R != 0 || got.G != 1 {
		t.Errorf("traceRay with env map = %v, want sampled texel, not clear color", got)
	}
}

func TestTraceRayHitLitSphereIsNonBlack(t *testing.T) {
	scene := &Scene{
		Primitives: []Primitive{Sphere{Center: Vertex{Z: -5, W: 1}, Radius: 1, MatID: 0}},
		Materials:  []Material{{Color: Pixel{R: 1, G: 1, B: 1}, KDiffuse: 1}},
		Lights:     []PointLight{{Center: Vertex{Y: 5, W: 1}, Color: Pixel{R: 1, G: 1, B: 1}}},
	}
	ray := Ray{Origin: Vertex{W: 1}, Dir: Vertex{Z: -1}}
	got := traceRay(scene, ray, 0)
	if got.R <= 0 && got.G <= 0 && got.B <= 0 {
		t.Errorf("lit sphere hit returned black: %v", got)
	}
}

func TestCheckVisibilityBlockedByOccluder(t *testing.T) {
	scene := &Scene{
		Primitives: []Primitive{Sphere{Center: Vertex{Z: -2, W: 1}, Radius: 1, MatID: 0}},
		Materials:  []Material{{}},
	}
	point := Vertex{Z: -5, W: 1}
	light := PointLight{Center: Vertex{W: 1}}
	if checkVisibility(scene, point, light) {
		t.Error("a sphere directly between point and light should block visibility")
	}
}

func TestCheckVisibilityUnobstructed(t *testing.T) {
	scene := &Scene{}
	point := Vertex{Z: -5, W: 1}
	light := PointLight{Center: Vertex{W: 1}}
	if !checkVisibility(scene, point, light) {
		t.Error("an empty scene should never occlude a light")
	}
}

func TestRefractTotalInternalReflectionFails(t *testing.T) {
	normal := Vertex{Y: 1}
	grazing := Ray{Dir: Vertex{X: 1}.Normalize()}
	if _, ok := refract(normal, 2.5, grazing); ok {
		t.Error("a grazing ray leaving a denser medium (dir·N >= 0, gamma = IOR) should total-internal-reflect")
	}
}

func TestRenderFillsEveryPixel(t *testing.T) {
	scene := &Scene{ClearColor: Pixel{R: 0.5, G: 0.5, B: 0.5}}
	buf := raster.NewBuffer(4, 4)
	Render(scene, identityInvPVM(), 4, 4, 2, buf)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := buf.At(x, y); got != (raster.Pixel{R: 0.5, G: 0.5, B: 0.5}) {
				t.Fatalf("At(%d,%d) = %v, want clear color", x, y, got)
			}
		}
	}
}
