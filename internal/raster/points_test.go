package raster

import "testing"

func TestDrawPointsSingleSizePlotsOnePixel(t *testing.T) {
	b := NewBuffer(10, 10)
	DrawPoints(b, []ScreenVertex{{X: 5, Y: 5, Z: 0.5}}, 1, Pixel{R: 1})
	if b.At(5, 5) != (Pixel{1, 0, 0}) {
		t.Errorf("At(5,5) = %v, want red", b.At(5, 5))
	}
}

func TestDrawPointsLargeSizeStampsSquare(t *testing.T) {
	b := NewBuffer(10, 10)
	DrawPoints(b, []ScreenVertex{{X: 2, Y: 2, Z: 0.5}}, 3, Pixel{G: 1})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if b.At(2+j, 2+i) != (Pixel{0, 1, 0}) {
				t.Errorf("At(%d,%d) = %v, want green", 2+j, 2+i, b.At(2+j, 2+i))
			}
		}
	}
}

func TestDrawPointsClampsSizeBelowOne(t *testing.T) {
	b := NewBuffer(10, 10)
	DrawPoints(b, []ScreenVertex{{X: 3, Y: 3, Z: 0.5}}, 0, Pixel{B: 1})
	if b.At(3, 3) != (Pixel{0, 0, 1}) {
		t.Error("size 0 should be clamped to 1 and still plot the point")
	}
}

func TestDrawPointsOutOfBoundsIsIgnored(t *testing.T) {
	b := NewBuffer(4, 4)
	DrawPoints(b, []ScreenVertex{{X: -5, Y: -5, Z: 0.5}}, 1, Pixel{R: 1})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if b.At(x, y) != (Pixel{}) {
				t.Fatalf("At(%d,%d) = %v, want untouched", x, y, b.At(x, y))
			}
		}
	}
}
