package raytrace

import "github.com/Natashaaak/CustomSGL/internal/raster"

const (
	antialiasWeight  = 0.8
	differenceEpsilon = 0.1
)

func channelDiffers(a, b raster.Pixel) bool {
	return abs(a.R-b.R) > differenceEpsilon ||
		abs(a.G-b.G) > differenceEpsilon ||
		abs(a.B-b.B) > differenceEpsilon
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func neighborsDiffer(buf *raster.Buffer, x, y int, neighbors [][2]int) bool {
	center := buf.At(x, y)
	for _, n := range neighbors {
		if channelDiffers(center, buf.At(x+n[0], y+n[1])) {
			return true
		}
	}
	return false
}

func antialiasRay(scene *Scene, invPVM [16]float32, width, height int, buf *raster.Buffer, x, y int) {
	current := buf.At(x, y)
	accumulated := raster.Pixel{
		R: current.R * (1 - antialiasWeight),
		G: current.G * (1 - antialiasWeight),
		B: current.B * (1 - antialiasWeight),
	}
	weight := float32(antialiasWeight) / 4
	offsets := [4][2]float32{{0.25, 0.25}, {0.25, 0.5}, {0.5, 0.25}, {0.5, 0.5}}
	for _, off := range offsets {
		ndc := Vertex{
			X: 2*(float32(x)+off[0])/float32(width) - 1,
			Y: -1 + 2*(float32(y)+off[1])/float32(height),
			Z: -1,
			W: 1,
		}
		near := Vertex{X: ndc.X, Y: ndc.Y, Z: -1, W: 1}
		far := Vertex{X: ndc.X, Y: ndc.Y, Z: 1, W: 1}
		worldNear := transform(invPVM, near).DivW()
		worldFar := transform(invPVM, far).DivW()
		ray := Ray{Origin: worldNear, Dir: worldFar.Sub(worldNear).Normalize()}
		c := traceRay(scene, ray, 0)
		accumulated.R += c.R * weight
		accumulated.G += c.G * weight
		accumulated.B += c.B * weight
	}
	buf.Set(x, y, accumulated)
}

// Antialiase runs the adaptive edge-detect supersampling pass over the
// whole buffer, comparing each pixel against its in-bounds neighbors
// and re-shading flagged pixels with four sub-pixel samples at fixed
// offsets (0.25 or 0.5 of a pixel in x and y).
func Antialiase(scene *Scene, invPVM [16]float32, width, height int, buf *raster.Buffer) {
	flagged := make([]bool, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var neighbors [][2]int
			switch {
			case y == 0 && x == 0:
				neighbors = [][2]int{{1, 0}, {0, 1}}
			case y == 0 && x == width-1:
				neighbors = [][2]int{{-1, 0}, {0, 1}}
			case y == height-1 && x == 0:
				neighbors = [][2]int{{1, 0}, {0, -1}}
			case y == height-1 && x == width-1:
				neighbors = [][2]int{{-1, 0}, {0, -1}}
			case y == 0:
				neighbors = [][2]int{{-1, 0}, {1, 0}, {0, 1}}
			case y == height-1:
				neighbors = [][2]int{{-1, 0}, {1, 0}, {0, -1}}
			case x == 0:
				neighbors = [][2]int{{1, 0}, {0, -1}, {0, 1}}
			case x == width-1:
				neighbors = [][2]int{{-1, 0}, {0, -1}, {0, 1}}
			default:
				neighbors = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
			}
			if neighborsDiffer(buf, x, y, neighbors) {
				flagged[x+y*width] = true
			}
		}
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if flagged[x+y*width] {
				antialiasRay(scene, invPVM, width, height, buf, x, y)
			}
		}
	}
}
