package sgl

import "github.com/chewxy/math32"

// Vertex is a homogeneous 4-component point or direction. Construction
// helpers default W to 1 and Z to 0, matching the original fixed
// function entry points (Vertex2f/Vertex3f).
type Vertex struct {
	X, Y, Z, W float32
}

// NewVertex3 builds a Vertex with W = 1.
func NewVertex3(x, y, z float32) Vertex {
	return Vertex{X: x, Y: y, Z: z, W: 1}
}

// NewVertex2 builds a Vertex with Z = 0, W = 1.
func NewVertex2(x, y float32) Vertex {
	return NewVertex3(x, y, 0)
}

func (v Vertex) Add(o Vertex) Vertex {
	return Vertex{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vertex) Sub(o Vertex) Vertex {
	return Vertex{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vertex) Mul(s float32) Vertex {
	return Vertex{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vertex) Div(s float32) Vertex {
	return Vertex{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Normalize returns v scaled to unit length over all four components.
// A zero-length vertex is returned unchanged.
func (v Vertex) Normalize() Vertex {
	length := math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
	if length == 0 {
		return v
	}
	return v.Mul(1 / length)
}

// DotProd is the 4-component dot product.
func DotProd(a, b Vertex) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// CrossProd is the 3-component cross product; W is always 0.
func CrossProd(a, b Vertex) Vertex {
	return Vertex{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
		W: 0,
	}
}
