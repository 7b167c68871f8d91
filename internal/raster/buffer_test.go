package raster

import "testing"

func TestNewBufferInitializesDepthToOne(t *testing.T) {
	b := NewBuffer(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if d := b.DepthAt(x, y); d != 1.0 {
				t.Fatalf("DepthAt(%d,%d) = %v, want 1.0", x, y, d)
			}
		}
	}
	if len(b.Color) != 4*3*3 {
		t.Errorf("len(Color) = %d, want %d", len(b.Color), 4*3*3)
	}
}

func TestSetAndAt(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Set(1, 0, Pixel{R: 0.5, G: 0.25, B: 0.1})
	got := b.At(1, 0)
	if got != (Pixel{0.5, 0.25, 0.1}) {
		t.Errorf("At(1,0) = %v", got)
	}
}

func TestDepthCheckDisabledAlwaysSucceedsWithoutMutating(t *testing.T) {
	b := NewBuffer(2, 2)
	b.DepthTest = false
	if !b.boundsAndDepthCheck(0, 0, 0.2) {
		t.Fatal("depth test disabled should always pass")
	}
	if b.DepthAt(0, 0) != 1.0 {
		t.Error("depth buffer mutated despite depth test being disabled")
	}
}

func TestDepthCheckWinnerOverwritesDepth(t *testing.T) {
	b := NewBuffer(2, 2)
	if !b.boundsAndDepthCheck(0, 0, 0.4) {
		t.Fatal("first fragment at z=0.4 should beat initial depth 1.0")
	}
	if b.DepthAt(0, 0) != 0.4 {
		t.Errorf("DepthAt(0,0) = %v, want 0.4", b.DepthAt(0, 0))
	}
	if b.boundsAndDepthCheck(0, 0, 0.5) {
		t.Error("fragment at z=0.5 should lose to the closer stored depth 0.4")
	}
}

func TestBoundsAndDepthCheckOutOfBounds(t *testing.T) {
	b := NewBuffer(2, 2)
	if b.boundsAndDepthCheck(-1, 0, 0) || b.boundsAndDepthCheck(2, 0, 0) {
		t.Error("out-of-bounds coordinates should fail the combined check")
	}
}

func TestClearColorAndDepth(t *testing.T) {
	b := NewBuffer(2, 2)
	b.ClearColor(Pixel{R: 1, G: 0, B: 0})
	b.ClearDepth(0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if b.At(x, y) != (Pixel{1, 0, 0}) {
				t.Fatalf("At(%d,%d) after ClearColor = %v", x, y, b.At(x, y))
			}
			if b.DepthAt(x, y) != 0 {
				t.Fatalf("DepthAt(%d,%d) after ClearDepth(0) = %v", x, y, b.DepthAt(x, y))
			}
		}
	}
}
