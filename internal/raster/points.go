package raster

// DrawPoints stamps an n×n square of pixels for each screen vertex,
// where n is the (already-rounded) point size. The vertex is the square's
// minimum-x, minimum-y corner; the square covers x..x+n-1 and
// y..y+n-1. Every stamped pixel runs
// the combined bounds-and-depth test independently.
func DrawPoints(b *Buffer, verts []ScreenVertex, n int, c Pixel) {
	if n < 1 {
		n = 1
	}
	for _, v := range verts {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				x, y := int(v.X)+j, int(v.Y)+i
				if b.boundsAndDepthCheck(x, y, v.Z) {
					b.Set(x, y, c)
				}
			}
		}
	}
}
