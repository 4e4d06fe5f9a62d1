package main

import "testing"

func TestSelfLoopRejected(t *testing.T) {
	s := NewScene(defaultConfig())
	n := s.AddNodeAt(Point{0, 0})

	if _, err := s.Connect(n, n); err == nil {
		t.Fatal("self loop should be rejected")
	}
	if len(s.Connections()) != 0 {
		t.Errorf("rejected connection ended up in the scene")
	}
	if len(n.Connections()) != 0 {
		t.Errorf("rejected connection ended up on the node")
	}
}

func TestSCurveControlPoints(t *testing.T) {
	s := NewScene(defaultConfig())
	a := s.AddNodeAt(Point{0, 0})
	b := s.AddNodeAt(Point{300, 200})
	c, err := s.Connect(a, b)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	// start (150,50), end (300,250), dx = 150: both control points sit
	// at the horizontal midpoint, one at each endpoint's height.
	if c.start != (Point{150, 50}) || c.end != (Point{300, 250}) {
		t.Fatalf("endpoints %v -> %v", c.start, c.end)
	}
	if c.ctrl1 != (Point{225, 50}) {
		t.Errorf("ctrl1 at %v, want (225,50)", c.ctrl1)
	}
	if c.ctrl2 != (Point{225, 250}) {
		t.Errorf("ctrl2 at %v, want (225,250)", c.ctrl2)
	}
}

func TestCurveEndpointsExact(t *testing.T) {
	s := NewScene(defaultConfig())
	a := s.AddNodeAt(Point{0, 0})
	b := s.AddNodeAt(Point{300, 0})
	c, _ := s.Connect(a, b)

	if got := c.PointAt(0); got != c.Start() {
		t.Errorf("curve at t=0 is %v, want %v", got, c.Start())
	}
	if got := c.PointAt(1); got != c.End() {
		t.Errorf("curve at t=1 is %v, want %v", got, c.End())
	}

	pts := c.Flatten(curveSegments)
	if len(pts) != curveSegments+1 {
		t.Fatalf("flatten produced %d points", len(pts))
	}
	if pts[0] != c.Start() || pts[len(pts)-1] != c.End() {
		t.Errorf("flattened curve endpoints %v .. %v", pts[0], pts[len(pts)-1])
	}
}

func TestDistanceToCurve(t *testing.T) {
	s := NewScene(defaultConfig())
	a := s.AddNodeAt(Point{0, 0})
	b := s.AddNodeAt(Point{300, 0})
	c, _ := s.Connect(a, b)

	// Both ports sit at y=50, so the curve is the straight segment
	// from (150,50) to (300,50).
	if d := c.DistanceTo(Point{225, 50}); d > 4 {
		t.Errorf("distance to midpoint %v, want near zero", d)
	}
	if d := c.DistanceTo(Point{225, 500}); d < 400 {
		t.Errorf("distance to far point %v, want large", d)
	}
}
