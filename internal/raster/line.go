package raster

import "github.com/chewxy/math32"

// lineEpsilon guards against a zero-length Bresenham line producing a
// division by zero when deriving the 1/z step.
const lineEpsilon = 4e-6

func sign(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func calculateZStep(z1, z2 float32, x1, x2 int) float32 {
	if x1 == x2 {
		return 0
	}
	return (invZ(z2) - invZ(z1)) / float32(x2-x1)
}

// plotLine draws a horizontal span [x1, x2] at row y with linear 1/z
// interpolation. It does not clamp the span to the canvas; each pixel
// still runs the combined bounds-and-depth test, so out-of-range pixels
// are skipped one by one.
func plotLine(b *Buffer, c Pixel, y, x1, x2 int, z1, z2 float32) {
	if x1 == x2 {
		if b.boundsAndDepthCheck(x1, y, z1) {
			b.Set(x1, y, c)
		}
		return
	}
	invZStep := calculateZStep(z1, z2, x1, x2)
	currentInvZ := invZ(z1)
	for x := x1; x <= x2; x++ {
		z := 1 / currentInvZ
		if b.boundsAndDepthCheck(x, y, z) {
			b.Set(x, y, c)
		}
		currentInvZ += invZStep
	}
}

// plotLineBoundsChecking clamps [x1, x2] to the canvas width before
// delegating to plotLine, re-deriving the starting 1/z after clamping
// the left edge forward.
func plotLineBoundsChecking(b *Buffer, c Pixel, y, x1, x2 int, z1, z2 float32) {
	if x1 < 0 {
		invZStep := calculateZStep(z1, z2, x1, x2)
		currentInvZ := invZ(z1) + invZStep*float32(-x1)
		z1 = 1 / currentInvZ
		x1 = 0
	}
	if x2 >= b.Width {
		x2 = b.Width - 1
	}
	if x1 > x2 {
		return
	}
	plotLine(b, c, y, x1, x2, z1, z2)
}

// DrawBresenhamLine rasterizes a line segment between two screen
// vertices using an integer-error Bresenham walk with 1/z interpolation
// linear in Euclidean pixel distance.
func DrawBresenhamLine(b *Buffer, a, bb ScreenVertex, c Pixel) {
	dX := bb.X - a.X
	dY := bb.Y - a.Y
	absDX, absDY := dX, dY
	if absDX < 0 {
		absDX = -absDX
	}
	if absDY < 0 {
		absDY = -absDY
	}
	totalDistance := math32.Sqrt(float32(absDX*absDX + absDY*absDY))
	if totalDistance < lineEpsilon {
		return
	}

	currentInvZ := invZ(a.Z)
	invZStep := (invZ(bb.Z) - invZ(a.Z)) / totalDistance

	sX := sign(dX)
	sY := sign(dY)

	errTerm := -absDY
	if absDX > absDY {
		errTerm = absDX
	}
	errTerm /= 2

	x, y := a.X, a.Y
	for x != bb.X || y != bb.Y {
		z := 1 / currentInvZ
		if b.boundsAndDepthCheck(int(x), int(y), z) {
			b.Set(int(x), int(y), c)
		}
		e2 := errTerm
		if e2 > -absDX {
			errTerm -= absDY
			x += sX
		}
		if e2 < absDY {
			errTerm += absDX
			y += sY
		}
		walkedX, walkedY := float32(x-a.X), float32(y-a.Y)
		currentInvZ = invZ(a.Z) + invZStep*math32.Sqrt(walkedX*walkedX+walkedY*walkedY)
	}
	z := 1 / currentInvZ
	if b.boundsAndDepthCheck(int(bb.X), int(bb.Y), z) {
		b.Set(int(bb.X), int(bb.Y), c)
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
