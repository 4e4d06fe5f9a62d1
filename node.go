package main

// Node is a draggable, selectable vertex with one input port (left
// midpoint) and one output port (right midpoint). Port offsets are
// fixed at construction; only the position moves.
type Node struct {
	ID         int
	Pos        Point
	Width      float64
	Height     float64
	PortRadius float64
	Label      string
	Selected   bool

	// Attached connections, non-owning: the scene owns the collection,
	// these are back-references kept in sync by attach/detach.
	conns []*Connection
}

func newNode(id int, pos Point, cfg *Config) *Node {
	return &Node{
		ID:         id,
		Pos:        pos,
		Width:      cfg.NodeWidth,
		Height:     cfg.NodeHeight,
		PortRadius: cfg.PortRadius,
		Label:      "node",
	}
}

// InputPort returns the input anchor in world coordinates.
func (n *Node) InputPort() Point {
	return Point{n.Pos.X, n.Pos.Y + n.Height/2}
}

// OutputPort returns the output anchor in world coordinates.
func (n *Node) OutputPort() Point {
	return Point{n.Pos.X + n.Width, n.Pos.Y + n.Height/2}
}

// BoundingBox is the body rectangle widened by the port radius on both
// sides so the ports are neither clipped nor unreachable for hit tests.
func (n *Node) BoundingBox() Rect {
	return NewRect(n.Pos.X-n.PortRadius, n.Pos.Y, n.Width+2*n.PortRadius, n.Height)
}

func (n *Node) Contains(p Point) bool {
	return n.BoundingBox().Contains(p)
}

// OnOutputPort reports whether p is within the port hit threshold of
// the output port. The threshold is Manhattan distance in world
// coordinates, so the effective screen-space target shrinks as the
// view zooms out; that matches the original behavior and is left as
// is.
func (n *Node) OnOutputPort(p Point, threshold float64) bool {
	return Manhattan(p, n.OutputPort()) < threshold
}

func (n *Node) OnInputPort(p Point, threshold float64) bool {
	return Manhattan(p, n.InputPort()) < threshold
}

// MoveTo commits a new position and recomputes the path of every
// attached connection. This is the only cross-entity invalidation
// rule in the graph and fires on drags and programmatic placement
// alike.
func (n *Node) MoveTo(p Point) {
	n.Pos = p
	for _, c := range n.conns {
		c.RecomputePath()
	}
}

func (n *Node) MoveBy(d Point) {
	n.MoveTo(n.Pos.Add(d))
}

func (n *Node) Connections() []*Connection {
	return n.conns
}

func (n *Node) attach(c *Connection) {
	n.conns = append(n.conns, c)
}

func (n *Node) detach(c *Connection) {
	for i, existing := range n.conns {
		if existing == c {
			n.conns = append(n.conns[:i], n.conns[i+1:]...)
			return
		}
	}
}
