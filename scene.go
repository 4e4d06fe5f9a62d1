package main

import "math/rand"

type gestureState int

const (
	gestureIdle gestureState = iota
	gestureDragNode
	gestureDrawConnection
)

// Scene owns the authoritative node and connection collections and
// runs the pointer gesture state machine. All pointer coordinates it
// sees are world coordinates; the editor converts from screen space
// before calling in.
type Scene struct {
	nodes []*Node
	conns []*Connection

	nextNodeID int
	nextConnID int
	cfg        *Config
	rng        *rand.Rand

	state      gestureState
	dragNode   *Node
	dragOffset Point

	pendingFrom  *Node
	pendingStart Point
	pendingEnd   Point
}

func NewScene(cfg *Config) *Scene {
	return &Scene{
		cfg: cfg,
		rng: rand.New(rand.NewSource(rand.Int63())),
	}
}

func (s *Scene) Nodes() []*Node             { return s.nodes }
func (s *Scene) Connections() []*Connection { return s.conns }
func (s *Scene) State() gestureState        { return s.state }
func (s *Scene) DraggedNode() *Node         { return s.dragNode }

// PendingLine returns the transient line endpoints while a connection
// gesture is in progress.
func (s *Scene) PendingLine() (from, to Point, ok bool) {
	if s.state != gestureDrawConnection {
		return Point{}, Point{}, false
	}
	return s.pendingStart, s.pendingEnd, true
}

// AddNode places a new node at a random spot, the way the toolbar
// action did in the ancestor of this editor.
func (s *Scene) AddNode() *Node {
	return s.AddNodeAt(Point{
		X: float64(s.rng.Intn(placeRangeX + 1)),
		Y: float64(s.rng.Intn(placeRangeY + 1)),
	})
}

func (s *Scene) AddNodeAt(p Point) *Node {
	n := newNode(s.nextNodeID, p, s.cfg)
	s.nextNodeID++
	s.nodes = append(s.nodes, n)
	return n
}

// RemoveNode deletes the node and cascade-deletes every attached
// connection, so no connection ever outlives an endpoint. It returns
// what was removed so the caller can undo it.
func (s *Scene) RemoveNode(n *Node) []*Connection {
	removed := make([]*Connection, len(n.conns))
	copy(removed, n.conns)
	for _, c := range removed {
		s.RemoveConnection(c)
	}
	for i, existing := range s.nodes {
		if existing == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			break
		}
	}
	return removed
}

// RestoreNode re-inserts a previously removed node and its
// connections, for undo.
func (s *Scene) RestoreNode(n *Node, conns []*Connection) {
	s.nodes = append(s.nodes, n)
	for _, c := range conns {
		s.RestoreConnection(c)
	}
}

// Connect commits a permanent connection from one node's output port
// to another's input port. Self-loops are rejected at construction.
func (s *Scene) Connect(from, to *Node) (*Connection, error) {
	c, err := newConnection(s.nextConnID, from, to)
	if err != nil {
		return nil, err
	}
	s.nextConnID++
	s.register(c)
	return c, nil
}

// register enforces the bidirectional invariant: a connection in the
// scene collection always appears in both endpoint attachment lists.
func (s *Scene) register(c *Connection) {
	s.conns = append(s.conns, c)
	c.From.attach(c)
	c.To.attach(c)
}

func (s *Scene) RemoveConnection(c *Connection) {
	for i, existing := range s.conns {
		if existing == c {
			s.conns = append(s.conns[:i], s.conns[i+1:]...)
			break
		}
	}
	c.From.detach(c)
	c.To.detach(c)
}

// RestoreConnection re-registers a previously removed connection, for
// undo. The path is recomputed since the endpoints may have moved.
func (s *Scene) RestoreConnection(c *Connection) {
	s.register(c)
	c.RecomputePath()
}

// NodeAt resolves the topmost node under p: nodes added later draw on
// top, so the scan runs newest-first. Connections always render
// beneath nodes and never shadow them.
func (s *Scene) NodeAt(p Point) *Node {
	for i := len(s.nodes) - 1; i >= 0; i-- {
		if s.nodes[i].Contains(p) {
			return s.nodes[i]
		}
	}
	return nil
}

// ConnectionAt returns the topmost connection whose curve passes
// within connectionHitRadius of p, or nil.
func (s *Scene) ConnectionAt(p Point) *Connection {
	for i := len(s.conns) - 1; i >= 0; i-- {
		if s.conns[i].DistanceTo(p) < connectionHitRadius {
			return s.conns[i]
		}
	}
	return nil
}

func (s *Scene) ClearSelection() {
	for _, n := range s.nodes {
		n.Selected = false
	}
}

func (s *Scene) SelectedNode() *Node {
	for i := len(s.nodes) - 1; i >= 0; i-- {
		if s.nodes[i].Selected {
			return s.nodes[i]
		}
	}
	return nil
}

// PointerDown starts a gesture. A press within the port threshold of
// the hit node's output port starts a connection draw; a press on the
// node body starts the default select-and-drag behavior. Input ports
// never start a gesture. Ports are only tested through the node that
// won the hit test, never independently.
func (s *Scene) PointerDown(p Point) {
	n := s.NodeAt(p)
	if n == nil {
		s.ClearSelection()
		return
	}
	if n.OnOutputPort(p, s.cfg.PortHitRadius) {
		s.state = gestureDrawConnection
		s.pendingFrom = n
		s.pendingStart = n.OutputPort()
		s.pendingEnd = p
		return
	}
	s.ClearSelection()
	n.Selected = true
	s.state = gestureDragNode
	s.dragNode = n
	s.dragOffset = p.Sub(n.Pos)
}

// PointerMove advances the active gesture: the dragged node follows
// the pointer (recomputing its connection paths), or the transient
// line's free end tracks it.
func (s *Scene) PointerMove(p Point) {
	switch s.state {
	case gestureDragNode:
		s.dragNode.MoveTo(p.Sub(s.dragOffset))
	case gestureDrawConnection:
		s.pendingEnd = p
	}
}

// PointerUp ends the gesture. The transient line is discarded
// unconditionally; a permanent connection is committed only when the
// release lands on a different node within the threshold of its input
// port. Everything else cancels silently. The committed connection,
// if any, is returned so the caller can record it for undo.
func (s *Scene) PointerUp(p Point) *Connection {
	switch s.state {
	case gestureDragNode:
		s.state = gestureIdle
		s.dragNode = nil
		return nil

	case gestureDrawConnection:
		from := s.pendingFrom
		s.state = gestureIdle
		s.pendingFrom = nil

		target := s.NodeAt(p)
		if target == nil || target == from {
			return nil
		}
		if !target.OnInputPort(p, s.cfg.PortHitRadius) {
			return nil
		}
		c, err := s.Connect(from, target)
		if err != nil {
			return nil
		}
		return c
	}
	return nil
}

// CancelGesture abandons whatever gesture is in flight, leaving scene
// state as it was at the last pointer event.
func (s *Scene) CancelGesture() {
	s.state = gestureIdle
	s.dragNode = nil
	s.pendingFrom = nil
}
