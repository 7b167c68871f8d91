package raster

// DrawBresenhamCircle draws a midpoint circle centered at (cx, cy) at a
// constant depth z. When outline is true it plots the 8-way symmetric
// points; otherwise it fills the disk with four horizontal spans per
// step. radius is already in pixel units (world radius * scale factor,
// rounded by the caller).
func DrawBresenhamCircle(b *Buffer, cx, cy int, z float32, radius int, outline bool, c Pixel, clampToWidth bool) {
	if radius == 0 {
		if b.boundsAndDepthCheck(cx, cy, z) {
			b.Set(cx, cy, c)
		}
		return
	}

	plotSpan := plotLine
	if clampToWidth {
		plotSpan = plotLineBoundsChecking
	}

	x, y := 0, radius
	d := 3 - 2*radius

	plotPoints := func(x, y int) {
		pts := [8][2]int{
			{cx + x, cy + y}, {cx - x, cy + y},
			{cx + x, cy - y}, {cx - x, cy - y},
			{cx + y, cy + x}, {cx - y, cy + x},
			{cx + y, cy - x}, {cx - y, cy - x},
		}
		for _, p := range pts {
			if b.boundsAndDepthCheck(p[0], p[1], z) {
				b.Set(p[0], p[1], c)
			}
		}
	}
	plotFilling := func(x, y int) {
		plotSpan(b, c, cy+y, cx-x, cx+x, z, z)
		plotSpan(b, c, cy-y, cx-x, cx+x, z, z)
		plotSpan(b, c, cy+x, cx-y, cx+y, z, z)
		plotSpan(b, c, cy-x, cx-y, cx+y, z, z)
	}

	for y >= x {
		if outline {
			plotPoints(x, y)
		} else {
			plotFilling(x, y)
		}
		if d < 0 {
			d += 4*x + 6
		} else {
			y--
			d += 4*(x-y) + 10
		}
		x++
	}
}
