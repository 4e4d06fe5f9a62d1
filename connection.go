package main

import "fmt"

// Connection is a directed edge from one node's output port to another
// node's input port, rendered as a cubic Bézier S-curve. Both
// endpoints stay alive for the connection's whole lifetime; deleting
// either node deletes the connection with it.
type Connection struct {
	ID   int
	From *Node // output side
	To   *Node // input side

	start Point
	end   Point
	ctrl1 Point
	ctrl2 Point
}

func newConnection(id int, from, to *Node) (*Connection, error) {
	if from == nil || to == nil {
		return nil, fmt.Errorf("connection needs two nodes")
	}
	if from == to {
		return nil, fmt.Errorf("connection cannot loop node %d onto itself", from.ID)
	}
	c := &Connection{ID: id, From: from, To: to}
	c.RecomputePath()
	return c, nil
}

// RecomputePath rebuilds the curve from the live port positions. Both
// control points sit at the horizontal midpoint, which bends the curve
// into an S between the two ports. Called whenever either endpoint
// moves; the path is never reused across a move.
func (c *Connection) RecomputePath() {
	c.start = c.From.OutputPort()
	c.end = c.To.InputPort()
	dx := c.end.X - c.start.X
	c.ctrl1 = Point{c.start.X + 0.5*dx, c.start.Y}
	c.ctrl2 = Point{c.start.X + 0.5*dx, c.end.Y}
}

func (c *Connection) Start() Point { return c.start }
func (c *Connection) End() Point   { return c.end }

// PointAt evaluates the curve at t in [0,1].
func (c *Connection) PointAt(t float64) Point {
	return cubicPoint(c.start, c.ctrl1, c.ctrl2, c.end, t)
}

// Flatten samples the curve into segments+1 points for rendering and
// proximity tests.
func (c *Connection) Flatten(segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	pts := make([]Point, segments+1)
	for i := 0; i <= segments; i++ {
		pts[i] = c.PointAt(float64(i) / float64(segments))
	}
	return pts
}

// DistanceTo returns the smallest Manhattan distance from p to the
// sampled curve.
func (c *Connection) DistanceTo(p Point) float64 {
	best := -1.0
	for _, pt := range c.Flatten(curveSegments) {
		if d := Manhattan(p, pt); best < 0 || d < best {
			best = d
		}
	}
	return best
}
