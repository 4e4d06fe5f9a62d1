package main

import (
	"math"
	"testing"
)

func testViewport(startZoom float64) *Viewport {
	cfg := defaultConfig()
	cfg.StartZoom = startZoom
	return NewViewport(cfg)
}

func TestZoomInStopsAtUpperBound(t *testing.T) {
	vp := testViewport(1.0)
	anchor := Point{50, 50}

	accepted := 0
	for i := 0; i < 20; i++ {
		if vp.Zoom(1, anchor) {
			accepted++
		}
	}

	// 1.25^6 ≈ 3.815 fits under 4.0, the 7th step would overshoot.
	if accepted != 6 {
		t.Errorf("expected 6 accepted zoom steps, got %d", accepted)
	}
	want := math.Pow(1.25, 6)
	if math.Abs(vp.Scale()-want) > 1e-9 {
		t.Errorf("expected scale %v, got %v", want, vp.Scale())
	}
	if vp.Scale() > 4.0 {
		t.Errorf("scale %v exceeds max zoom", vp.Scale())
	}
}

func TestZoomOutStopsAtLowerBound(t *testing.T) {
	vp := testViewport(1.0)
	anchor := Point{0, 0}

	for i := 0; i < 20; i++ {
		vp.Zoom(-1, anchor)
	}

	// 0.8^6 ≈ 0.262 stays above 0.25, one more would undershoot.
	want := math.Pow(0.8, 6)
	if math.Abs(vp.Scale()-want) > 1e-9 {
		t.Errorf("expected scale %v, got %v", want, vp.Scale())
	}
	if vp.Scale() < 0.25 {
		t.Errorf("scale %v fell below min zoom", vp.Scale())
	}
}

func TestRejectedZoomLeavesTransformUntouched(t *testing.T) {
	vp := testViewport(4.0)
	before := vp.Offset()

	if vp.Zoom(1, Point{10, 20}) {
		t.Fatal("zoom beyond the upper bound should be rejected")
	}
	if vp.Scale() != 4.0 {
		t.Errorf("scale changed on rejected zoom: %v", vp.Scale())
	}
	if vp.Offset() != before {
		t.Errorf("offset changed on rejected zoom: %v", vp.Offset())
	}
}

func TestZoomAnchoredUnderPointer(t *testing.T) {
	vp := testViewport(1.0)
	vp.PanBy(Point{13, -27})
	anchor := Point{37, 59}

	before := vp.ToWorld(anchor)
	if !vp.Zoom(1, anchor) {
		t.Fatal("zoom should be accepted")
	}
	after := vp.ToWorld(anchor)

	if math.Abs(before.X-after.X) > 1e-9 || math.Abs(before.Y-after.Y) > 1e-9 {
		t.Errorf("world point under anchor moved: %v -> %v", before, after)
	}
}

func TestPanMovesByScreenDelta(t *testing.T) {
	vp := testViewport(1.0)

	vp.BeginPan(Point{10, 10})
	vp.UpdatePan(Point{15, 12})
	vp.UpdatePan(Point{18, 20})
	vp.EndPan()

	want := Point{8, 10}
	if vp.Offset() != want {
		t.Errorf("expected offset %v, got %v", want, vp.Offset())
	}

	// Updates after the pan ends are ignored.
	vp.UpdatePan(Point{100, 100})
	if vp.Offset() != want {
		t.Errorf("offset changed after EndPan: %v", vp.Offset())
	}
}

func TestToWorldToScreenRoundTrip(t *testing.T) {
	vp := testViewport(2.0)
	vp.PanBy(Point{-40, 25})

	p := Point{123.5, -77.25}
	got := vp.ToWorld(vp.ToScreen(p))
	if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
		t.Errorf("round trip changed %v to %v", p, got)
	}
}

func TestGridLinesCoverVisibleRectOnly(t *testing.T) {
	vp := testViewport(1.0)

	lines := vp.GridLines(100, 60, 20, 5)

	vertical, horizontal := 0, 0
	for _, l := range lines {
		if l.From.X == l.To.X {
			vertical++
			if l.From.X < 0 || l.From.X >= 100 {
				t.Errorf("vertical line at %v outside visible rect", l.From.X)
			}
		} else {
			horizontal++
			if l.From.Y < 0 || l.From.Y >= 60 {
				t.Errorf("horizontal line at %v outside visible rect", l.From.Y)
			}
		}
	}
	if vertical != 5 {
		t.Errorf("expected 5 vertical lines, got %d", vertical)
	}
	if horizontal != 3 {
		t.Errorf("expected 3 horizontal lines, got %d", horizontal)
	}
}

func TestGridLinesMajorSpacing(t *testing.T) {
	vp := testViewport(1.0)

	major := 0
	for _, l := range vp.GridLines(220, 10, 20, 5) {
		if l.From.X != l.To.X {
			continue
		}
		if l.Major {
			major++
			if math.Mod(l.From.X, 100) != 0 {
				t.Errorf("major line at unexpected x %v", l.From.X)
			}
		}
	}
	// x = 0, 100, 200 inside [0, 220).
	if major != 3 {
		t.Errorf("expected 3 major vertical lines, got %d", major)
	}
}
