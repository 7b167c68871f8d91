// Package raytrace implements the recursive ray tracer: primary ray
// generation, closest-hit search, Phong shading with shadow rays,
// recursive reflection/refraction, environment map sampling and the
// adaptive anti-aliasing post-pass. It keeps its own vertex/material
// types, independent of the root package's richer scene types, so it
// can be driven purely by flat data (an inverse matrix and plain
// slices) with no import of the root package.
package raytrace

import "github.com/chewxy/math32"

// Vertex is a homogeneous 4-component point or direction.
type Vertex struct {
	X, Y, Z, W float32
}

func (v Vertex) Add(o Vertex) Vertex {
	return Vertex{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vertex) Sub(o Vertex) Vertex {
	return Vertex{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vertex) Scale(s float32) Vertex {
	return Vertex{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vertex) DivW() Vertex {
	if v.W == 0 {
		return v
	}
	return Vertex{v.X / v.W, v.Y / v.W, v.Z / v.W, 1}
}

func Dot(a, b Vertex) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func Cross(a, b Vertex) Vertex {
	return Vertex{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
		W: 0,
	}
}

func (v Vertex) Normalize() Vertex {
	length := math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
	if length == 0 {
		return v
	}
	return v.Scale(1 / length)
}

// Pixel is a packed RGB color.
type Pixel struct {
	R, G, B float32
}

func (p Pixel) Add(o Pixel) Pixel { return Pixel{p.R + o.R, p.G + o.G, p.B + o.B} }
func (p Pixel) Mul(o Pixel) Pixel { return Pixel{p.R * o.R, p.G * o.G, p.B * o.B} }
func (p Pixel) Scale(s float32) Pixel { return Pixel{p.R * s, p.G * s, p.B * s} }

// Ray is a parametric ray: point(t) = Origin + Dir*t.
type Ray struct {
	Origin, Dir Vertex
}

// ComputeT solves for the ray parameter t that reaches point, using
// whichever axis of Dir is non-zero.
func (r Ray) ComputeT(point Vertex) float32 {
	switch {
	case r.Dir.X != 0:
		return (point.X - r.Origin.X) / r.Dir.X
	case r.Dir.Y != 0:
		return (point.Y - r.Origin.Y) / r.Dir.Y
	case r.Dir.Z != 0:
		return (point.Z - r.Origin.Z) / r.Dir.Z
	default:
		return 0
	}
}

// Material describes a fixed-function Phong surface with optional
// reflective and transmissive components.
type Material struct {
	Color                          Pixel
	KDiffuse, KSpecular, Shininess float32
	T, IOR                         float32
}

// PointLight is an omnidirectional light source with no attenuation.
type PointLight struct {
	Center Vertex
	Color  Pixel
}

// EnvironmentMap is a spherical-mapped texel grid sampled on ray miss.
type EnvironmentMap struct {
	Width, Height int
	Texels        []float32 // len = 3*Width*Height
}

func (m *EnvironmentMap) sample(dir Vertex) Pixel {
	c := math32.Sqrt(dir.X*dir.X + dir.Y*dir.Y)
	var r float32
	if c > 0 {
		r = math32.Acos(dir.Z) / (2 * c * math32.Pi)
	}
	u := (0.5 + r*dir.X) * float32(m.Width)
	v := (0.5 - r*dir.Y) * float32(m.Height)
	ui, vi := int(u), int(v)
	if ui < 0 {
		ui = 0
	}
	if ui >= m.Width {
		ui = m.Width - 1
	}
	if vi < 0 {
		vi = 0
	}
	if vi >= m.Height {
		vi = m.Height - 1
	}
	id := 3 * (ui + vi*m.Width)
	if id+2 >= len(m.Texels) {
		return Pixel{}
	}
	return Pixel{R: m.Texels[id], G: m.Texels[id+1], B: m.Texels[id+2]}
}

// Primitive is a ray-intersectable scene object.
type Primitive interface {
	Intersect(r Ray) (t float32, ok bool)
	Normal(at Vertex) Vertex
	MaterialID() int
}

// Sphere is a ray-intersectable sphere.
type Sphere struct {
	Center   Vertex
	Radius   float32
	MatID    int
}

func (s Sphere) MaterialID() int { return s.MatID }

func (s Sphere) Normal(at Vertex) Vertex {
	return at.Sub(s.Center).Normalize()
}

func (s Sphere) Intersect(r Ray) (float32, bool) {
	oc := r.Origin.Sub(s.Center)
	a := Dot(r.Dir, r.Dir)
	b := 2 * Dot(oc, r.Dir)
	c := Dot(oc, oc) - s.Radius*s.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	const epsilonT = 0.01
	if t1 >= epsilonT {
		return t1, true
	}
	if t2 >= epsilonT {
		return t2, true
	}
	return 0, false
}

// Triangle is a ray-intersectable flat triangle.
type Triangle struct {
	P0, P1, P2 Vertex
	MatID      int
}

func (t Triangle) MaterialID() int { return t.MatID }

func (t Triangle) Normal(at Vertex) Vertex {
	e1 := t.P1.Sub(t.P0)
	e2 := t.P2.Sub(t.P0)
	return Cross(e1, e2).Normalize()
}

// Intersect uses the Möller–Trumbore barycentric method.
func (t Triangle) Intersect(r Ray) (float32, bool) {
	const epsilon = 1e-7
	e1 := t.P1.Sub(t.P0)
	e2 := t.P2.Sub(t.P0)
	pvec := Cross(r.Dir, e2)
	det := Dot(e1, pvec)
	if det > -epsilon && det < epsilon {
		return 0, false
	}
	invDet := 1 / det
	tvec := r.Origin.Sub(t.P0)
	u := Dot(tvec, pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}
	qvec := Cross(tvec, e1)
	v := Dot(r.Dir, qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}
	const epsilonT = 0.01
	tt := Dot(e2, qvec) * invDet
	if tt < epsilonT {
		return 0, false
	}
	return tt, true
}

// Scene is the immutable set of primitives, materials, lights and
// environment map a render operates against.
type Scene struct {
	Primitives []Primitive
	Materials  []Material
	Lights     []PointLight
	EnvMap     *EnvironmentMap
	ClearColor Pixel
}
