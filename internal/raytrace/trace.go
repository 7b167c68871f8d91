package raytrace

import (
	"github.com/chewxy/math32"

	"github.com/Natashaaak/CustomSGL/internal/parallel"
	"github.com/Natashaaak/CustomSGL/internal/raster"
)

const (
	maxRecursionDepth = 8
	intersectionBias  = 1e-4
	epsilonT          = 1e-2
)

func transform(m [16]float32, v Vertex) Vertex {
	return Vertex{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

func pixelToNDC(x, y, width, height int) Vertex {
	ndcX := 2*(float32(x)+0.5)/float32(width) - 1
	ndcY := -1 + 2*(float32(y)+0.5)/float32(height)
	return Vertex{X: ndcX, Y: ndcY, Z: -1, W: 1}
}

// generatePrimaryRay inverts the standard near/far NDC points through
// invPVM to build the world-space ray through pixel (x, y).
func generatePrimaryRay(x, y, width, height int, invPVM [16]float32) Ray {
	ndc := pixelToNDC(x, y, width, height)
	near := Vertex{X: ndc.X, Y: ndc.Y, Z: -1, W: 1}
	far := Vertex{X: ndc.X, Y: ndc.Y, Z: 1, W: 1}

	worldNear := transform(invPVM, near).DivW()
	worldFar := transform(invPVM, far).DivW()

	return Ray{Origin: worldNear, Dir: worldFar.Sub(worldNear).Normalize()}
}

// findClosestIntersection linearly probes every primitive, culling
// back-faces of opaque (non-transparent) materials.
func findClosestIntersection(scene *Scene, ray Ray) (Primitive, float32, bool) {
	var closest Primitive
	closestT := math32.Inf(1)
	found := false
	for _, p := range scene.Primitives {
		t, ok := p.Intersect(ray)
		if !ok || t >= closestT {
			continue
		}
		hit := ray.Origin.Add(ray.Dir.Scale(t))
		normal := p.Normal(hit)
		dot := Dot(normal, ray.Dir)
		mat := scene.Materials[p.MaterialID()]
		if mat.T <= 0 && dot > 0 {
			continue
		}
		closest, closestT, found = p, t, true
	}
	return closest, closestT, found
}

func checkVisibility(scene *Scene, point Vertex, light PointLight) bool {
	shadowDir := light.Center.Sub(point).Normalize()
	shadowRay := Ray{Origin: point, Dir: shadowDir}
	lightHit := shadowRay.ComputeT(light.Center) - epsilonT
	for _, p := range scene.Primitives {
		t, ok := p.Intersect(shadowRay)
		if ok && t < lightHit {
			return false
		}
	}
	return true
}

// refract computes the Snell-refracted direction, returning false on
// total internal reflection (no fallback direction in that case).
func refract(normal Vertex, ior float32, in Ray) (Vertex, bool) {
	dot := Dot(in.Dir, normal)
	gamma := float32(1) / ior
	if dot >= 0 {
		gamma = ior
		dot = -dot
		normal = normal.Scale(-1)
	}
	sqrterm := 1 - gamma*gamma*(1-dot*dot)
	if sqrterm <= 0 {
		return Vertex{}, false
	}
	sqrterm = dot*gamma + math32.Sqrt(sqrterm)
	dir := normal.Scale(-sqrterm).Add(in.Dir.Scale(gamma))
	return dir, true
}

func traceRay(scene *Scene, ray Ray, depth int) Pixel {
	primitive, t, ok := findClosestIntersection(scene, ray)
	if !ok {
		if scene.EnvMap != nil {
			return scene.EnvMap.sample(ray.Dir)
		}
		return scene.ClearColor
	}

	point := ray.Origin.Add(ray.Dir.Scale(t))
	normal := primitive.Normal(point)
	mat := scene.Materials[primitive.MaterialID()]
	biasedPoint := point.Add(normal.Scale(intersectionBias))

	color := Pixel{}
	for _, light := range scene.Lights {
		if checkVisibility(scene, biasedPoint, light) {
			color = color.Add(phong(light, point, normal, ray.Origin, mat))
		}
	}

	if depth < maxRecursionDepth {
		if mat.KSpecular > 0 {
			reflectedDir := ray.Dir.Sub(normal.Scale(2 * Dot(normal, ray.Dir))).Normalize()
			reflected := traceRay(scene, Ray{Origin: biasedPoint, Dir: reflectedDir}, depth+1)
			color = color.Add(reflected.Scale(mat.KSpecular))
		}
		if mat.T > 0 {
			if dir, ok := refract(normal, mat.IOR, ray); ok {
				dir = dir.Normalize()
				origin := point.Sub(normal.Scale(intersectionBias))
				refracted := traceRay(scene, Ray{Origin: origin, Dir: dir}, depth+1)
				color = color.Add(refracted.Scale(mat.T))
			}
		}
	}
	return color
}

// Render traces the whole scene into buf, partitioning scanlines across
// workers goroutines. invPVM is the row-major inverse of projection *
// model-view (no viewport).
func Render(scene *Scene, invPVM [16]float32, width, height, workers int, buf *raster.Buffer) {
	parallel.Bands(height, workers, func(startY, endY int) {
		for y := startY; y < endY; y++ {
			for x := 0; x < width; x++ {
				ray := generatePrimaryRay(x, y, width, height, invPVM)
				c := traceRay(scene, ray, 0)
				buf.Set(x, y, raster.Pixel{R: c.R, G: c.G, B: c.B})
			}
		}
	})
}
