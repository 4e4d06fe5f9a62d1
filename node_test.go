package main

import "testing"

func TestPortAnchors(t *testing.T) {
	n := newNode(0, Point{10, 20}, defaultConfig())

	if got := n.InputPort(); got != (Point{10, 70}) {
		t.Errorf("input port at %v", got)
	}
	if got := n.OutputPort(); got != (Point{160, 70}) {
		t.Errorf("output port at %v", got)
	}

	// Ports track the position; their offsets never change.
	n.MoveTo(Point{100, 200})
	if got := n.InputPort(); got != (Point{100, 250}) {
		t.Errorf("input port after move at %v", got)
	}
	if got := n.OutputPort(); got != (Point{250, 250}) {
		t.Errorf("output port after move at %v", got)
	}
}

func TestBoundingBoxIncludesPorts(t *testing.T) {
	n := newNode(0, Point{0, 0}, defaultConfig())
	bb := n.BoundingBox()

	if bb.Min.X != -6 || bb.Max.X != 156 {
		t.Errorf("bounding box x range [%v, %v), want [-6, 156)", bb.Min.X, bb.Max.X)
	}
	if bb.Min.Y != 0 || bb.Max.Y != 100 {
		t.Errorf("bounding box y range [%v, %v), want [0, 100)", bb.Min.Y, bb.Max.Y)
	}

	if !n.Contains(Point{-3, 50}) {
		t.Error("point over the input port should hit the node")
	}
	if n.Contains(Point{200, 50}) {
		t.Error("point beyond the output port should miss")
	}
}

func TestPortHitThreshold(t *testing.T) {
	cfg := defaultConfig()
	n := newNode(0, Point{0, 0}, cfg)

	// Manhattan distance 14 = 7 + 7 is inside the threshold of 15.
	if !n.OnOutputPort(Point{157, 57}, cfg.PortHitRadius) {
		t.Error("point at Manhattan distance 14 should be on the port")
	}
	// Manhattan distance 16 = 8 + 8 is outside.
	if n.OnOutputPort(Point{158, 58}, cfg.PortHitRadius) {
		t.Error("point at Manhattan distance 16 should miss the port")
	}
	if n.OnInputPort(Point{150, 50}, cfg.PortHitRadius) {
		t.Error("output port position should not hit the input port")
	}
}

func TestMoveRecomputesAttachedPaths(t *testing.T) {
	cfg := defaultConfig()
	s := NewScene(cfg)
	a := s.AddNodeAt(Point{0, 0})
	b := s.AddNodeAt(Point{300, 0})
	c, err := s.Connect(a, b)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	a.MoveTo(Point{50, 30})

	if got := c.Start(); got != a.OutputPort() {
		t.Errorf("path start %v does not match moved output port %v", got, a.OutputPort())
	}
	if got := c.End(); got != (Point{300, 50}) {
		t.Errorf("path end moved to %v, should be unchanged", got)
	}

	a.MoveBy(Point{10, -5})
	if a.Pos != (Point{60, 25}) {
		t.Errorf("relative move left node at %v", a.Pos)
	}
	if got := c.Start(); got != a.OutputPort() {
		t.Errorf("path start %v stale after relative move", got)
	}
}
