package raytrace

import "github.com/chewxy/math32"

// phong computes the direct (non-recursive) Phong contribution of one
// light at an intersection point, with no ambient term.
func phong(light PointLight, point, normal, rayOrigin Vertex, mat Material) Pixel {
	lightDir := light.Center.Sub(point).Normalize()
	viewDir := rayOrigin.Sub(point).Normalize()

	cosAlpha := Dot(normal, lightDir)
	if cosAlpha < 0 {
		cosAlpha = 0
	}
	diffuse := light.Color.Mul(mat.Color.Scale(mat.KDiffuse * cosAlpha))

	reflected := normal.Scale(2 * Dot(normal, lightDir)).Sub(lightDir)
	cosBeta := Dot(reflected, viewDir)
	if cosBeta < 0 {
		cosBeta = 0
	}
	specular := light.Color.Scale(mat.KSpecular * math32.Pow(cosBeta, mat.Shininess))

	return diffuse.Add(specular)
}
