package raytrace

import "testing"

func TestPhongFacingLightProducesDiffuse(t *testing.T) {
	light := PointLight{Center: Vertex{Y: 5, W: 1}, Color: Pixel{R: 1, G: 1, B: 1}}
	point := Vertex{W: 1}
	normal := Vertex{Y: 1}
	rayOrigin := Vertex{Z: 5, W: 1}
	mat := Material{Color: Pixel{R: 1, G: 1, B: 1}, KDiffuse: 0.8}

	got := phong(light, point, normal, rayOrigin, mat)
	if got.R <= 0 {
		t.Errorf("phong R = %v, want > 0 for a light facing the surface", got.R)
	}
}

func TestPhongBackFacingLightHasNoDiffuse(t *testing.T) {
	light := PointLight{Center: Vertex{Y: -5, W: 1}, Color: Pixel{R: 1, G: 1, B: 1}}
	point := Vertex{W: 1}
	normal := Vertex{Y: 1}
	rayOrigin := Vertex{Z: 5, W: 1}
	mat := Material{Color: Pixel{R: 1, G: 1, B: 1}, KDiffuse: 1, KSpecular: 0}

	got := phong(light, point, normal, rayOrigin, mat)
	if got.R != 0 {
		t.Errorf("phong R = %v, want 0 when the light is behind the surface", got.R)
	}
}
