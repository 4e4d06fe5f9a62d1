package main

// The scene renders to a display list of draw ops in world
// coordinates. The terminal view and the PNG exporter both consume the
// same list, so they cannot disagree about what a frame contains.
// Ordering in the list is depth ordering: grid, then connections in
// insertion order, then the transient gesture line, then nodes with
// their ports. Connections therefore always sit beneath node bodies.

type DrawOp interface {
	drawOp()
}

type GridLineOp struct {
	From  Point
	To    Point
	Major bool
}

type CurveOp struct {
	Points []Point
}

// DashedLineOp is the transient endpoint-to-pointer line shown while a
// connection gesture is in progress.
type DashedLineOp struct {
	From Point
	To   Point
}

type NodeOp struct {
	Body     Rect
	Selected bool
	Label    string
}

type PortOp struct {
	Center Point
	Radius float64
}

func (GridLineOp) drawOp()   {}
func (CurveOp) drawOp()      {}
func (DashedLineOp) drawOp() {}
func (NodeOp) drawOp()       {}
func (PortOp) drawOp()       {}

// BuildFrame assembles the display list for one full-viewport redraw.
// screenW/screenH are in screen units; the grid is culled to the
// visible world rectangle.
func BuildFrame(s *Scene, v *Viewport, screenW, screenH float64, cfg *Config) []DrawOp {
	var ops []DrawOp

	for _, gl := range v.GridLines(screenW, screenH, cfg.GridSize, cfg.GridMajorEvery) {
		ops = append(ops, GridLineOp{From: gl.From, To: gl.To, Major: gl.Major})
	}

	for _, c := range s.Connections() {
		ops = append(ops, CurveOp{Points: c.Flatten(curveSegments)})
	}

	if from, to, ok := s.PendingLine(); ok {
		ops = append(ops, DashedLineOp{From: from, To: to})
	}

	for _, n := range s.Nodes() {
		ops = append(ops, NodeOp{
			Body:     NewRect(n.Pos.X, n.Pos.Y, n.Width, n.Height),
			Selected: n.Selected,
			Label:    n.Label,
		})
		ops = append(ops, PortOp{Center: n.InputPort(), Radius: n.PortRadius})
		ops = append(ops, PortOp{Center: n.OutputPort(), Radius: n.PortRadius})
	}

	return ops
}
